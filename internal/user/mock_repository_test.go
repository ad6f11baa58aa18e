package user

import (
	"context"
	"sync"
	"time"
)

type mockRepository struct {
	mu        sync.Mutex
	users     map[string]*User
	createErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: map[string]*User{}}
}

func (m *mockRepository) createUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	user.CreatedAt = time.Now().UTC()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockRepository) getUserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) updateHashToken(_ context.Context, userID, hashToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.HashToken = hashToken
	return nil
}
