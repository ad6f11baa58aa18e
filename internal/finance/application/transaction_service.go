package application

import (
	"context"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

type CategoryChecker interface {
	HasCategory(ctx context.Context, userID, name string) (bool, error)
}

type TransactionService struct {
	repo       domain.TransactionRepository
	categories CategoryChecker
	recorder   Recorder
	now        func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, categories CategoryChecker, recorder Recorder) *TransactionService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &TransactionService{repo: repo, categories: categories, recorder: recorder, now: time.Now}
}

func (s *TransactionService) AddTransaction(ctx context.Context, userID string, request domain.NewTransaction) (*domain.Transaction, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	date := domain.Today(s.now())
	if request.Date != "" {
		parsed, err := domain.ParseDate(request.Date)
		if err != nil {
			return nil, financeErrors.NewValidationError("date must be a date in YYYY-MM-DD format")
		}
		date = parsed
	}

	known, err := s.categories.HasCategory(ctx, userID, request.Category)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, financeErrors.ErrUnknownCategory
	}

	transaction := &domain.Transaction{
		UserID:      userID,
		Type:        request.Type,
		Amount:      request.Amount,
		Category:    request.Category,
		Description: request.Description,
		Date:        date,
	}
	if err := s.repo.Save(ctx, transaction); err != nil {
		return nil, err
	}
	s.recorder.TransactionAdded(transaction.Type)
	return transaction, nil
}

// DeleteTransaction removes the transaction only if userID owns it.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	affected, err := s.repo.Delete(ctx, transactionID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *TransactionService) HasTransactions(ctx context.Context, userID string) (bool, error) {
	count, err := s.repo.CountByUser(ctx, userID)
	return count > 0, err
}
