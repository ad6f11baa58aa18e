package application

import "context"

// UserLookup resolves a user id. Implementations return a NotFound error for unknown ids.
type UserLookup interface {
	LookupUsername(ctx context.Context, userID string) (string, error)
}

type Recorder interface {
	SummaryComputed()
	TransactionAdded(transactionType string)
}

type nopRecorder struct{}

func (nopRecorder) SummaryComputed()        {}
func (nopRecorder) TransactionAdded(string) {}
