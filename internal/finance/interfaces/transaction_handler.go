package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	AddTransaction(ctx context.Context, userID string, request domain.NewTransaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) error
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	responder
	service TransactionServiceInterface
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	if service == nil {
		panic("transaction service must not be nil")
	}
	return &TransactionHandler{responder: newResponder(respondJSON, respondError), service: service}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request domain.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.AddTransaction(r.Context(), userID, request)
	if err != nil {
		h.serviceError(w, r, err, "Failed to create transaction")
		return
	}
	h.success(w, http.StatusCreated, "Transaction added successfully.", transaction)
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve transactions")
		return
	}
	h.success(w, http.StatusOK, "Transactions retrieved successfully.", transactions)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	transactionID, ok := h.pathID(w, r, "transactionID")
	if !ok {
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
		h.serviceError(w, r, err, "Failed to delete transaction")
		return
	}
	h.success(w, http.StatusOK, "Transaction deleted.", nil)
}
