package domain

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

// DefaultCategories are available to every user and never stored.
var DefaultCategories = []string{"Food", "Rent", "Utilities", "Transportation", "Entertainment", "Misc"}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	// FindByUser returns the user's custom categories ordered by name.
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	ExistsByName(ctx context.Context, userID, name string) (bool, error)
	Delete(ctx context.Context, categoryID int64, userID string) (int64, error)
}

type Category struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type NewCategory struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=50"`
}

func (n *NewCategory) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	return validator.Struct(n)
}

// MergeCategories returns the defaults and the custom names, deduplicated and sorted.
func MergeCategories(custom []Category) []string {
	seen := make(map[string]struct{}, len(DefaultCategories)+len(custom))
	names := make([]string, 0, len(DefaultCategories)+len(custom))
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range DefaultCategories {
		add(name)
	}
	for _, c := range custom {
		add(c.Name)
	}
	sort.Strings(names)
	return names
}
