package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	database "github.com/sebuszqo/BudgetTracker/db"
)

type Repository interface {
	createUser(ctx context.Context, user *User) error
	getUserByUsername(ctx context.Context, username string) (*User, error)
	getUserByID(ctx context.Context, id string) (*User, error)
	updateHashToken(ctx context.Context, userID, hashToken string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, username, password_hash, hash_token)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;
	`
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.HashToken).Scan(&user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *userRepository) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, password_hash, hash_token, created_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) getUserByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, username, password_hash, hash_token, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.HashToken, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) updateHashToken(ctx context.Context, userID, hashToken string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET hash_token = $1 WHERE id = $2`, hashToken, userID)
	if err != nil {
		return fmt.Errorf("could not update hash token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update hash token: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
