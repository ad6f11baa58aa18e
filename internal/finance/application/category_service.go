package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories returns the default categories merged with the user's own, sorted.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]string, error) {
	custom, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.MergeCategories(custom), nil
}

func (s *CategoryService) ListCustomCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.repo.FindByUser(ctx, userID)
}

// HasCategory reports whether name is a default category or one of the user's.
func (s *CategoryService) HasCategory(ctx context.Context, userID, name string) (bool, error) {
	for _, c := range domain.DefaultCategories {
		if c == name {
			return true, nil
		}
	}
	return s.repo.ExistsByName(ctx, userID, name)
}

func (s *CategoryService) AddCategory(ctx context.Context, userID, name string) (*domain.Category, error) {
	request := domain.NewCategory{Name: name}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, userID, request.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, financeErrors.ErrCategoryExists
	}

	category := &domain.Category{UserID: userID, Name: request.Name}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// EnsureCategory adds name for the user unless it already exists.
func (s *CategoryService) EnsureCategory(ctx context.Context, userID, name string) error {
	_, err := s.AddCategory(ctx, userID, name)
	if err != nil && !financeErrors.IsConflictError(err) {
		return fmt.Errorf("ensure category %q: %w", strings.TrimSpace(name), err)
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, userID string, categoryID int64) error {
	affected, err := s.repo.Delete(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}
