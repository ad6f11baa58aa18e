package auth

import (
	"context"
	"strings"

	"github.com/sebuszqo/BudgetTracker/internal/user"
)

// mockUserService stores plain-text passwords; hashing is covered by the user package.
type mockUserService struct {
	users     map[string]*user.User
	passwords map[string]string
	rotations int
}

func newMockUserService() *mockUserService {
	return &mockUserService{users: map[string]*user.User{}, passwords: map[string]string{}}
}

func (m *mockUserService) add(id, username, password string) *user.User {
	u := &user.User{ID: id, Username: username, HashToken: "hash-" + id}
	m.users[id] = u
	m.passwords[id] = password
	return u
}

func (m *mockUserService) Register(context.Context, user.RegisterRequest) (*user.User, error) {
	panic("not used")
}

func (m *mockUserService) EnsureUser(context.Context, string, string) (*user.User, bool, error) {
	panic("not used")
}

func (m *mockUserService) GetUserByID(_ context.Context, userID string) (*user.User, error) {
	if u, ok := m.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == strings.TrimSpace(username) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) LookupUsername(ctx context.Context, userID string) (string, error) {
	u, err := m.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (m *mockUserService) CheckPassword(u *user.User, password string) error {
	if m.passwords[u.ID] != password {
		return user.ErrInvalidPassword
	}
	return nil
}

func (m *mockUserService) RotateHashToken(_ context.Context, userID string) (string, error) {
	u, ok := m.users[userID]
	if !ok {
		return "", user.ErrUserNotFound
	}
	m.rotations++
	u.HashToken = u.HashToken + "-rotated"
	return u.HashToken, nil
}
