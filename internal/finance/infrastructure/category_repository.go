package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	database "github.com/sebuszqo/BudgetTracker/db"
	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id, created_at`,
		category.UserID, category.Name,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return financeErrors.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, created_at FROM categories WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE user_id = $1 AND name = $2)"
	if err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	return result.RowsAffected()
}
