package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

type BudgetServiceInterface interface {
	SetBudget(ctx context.Context, userID string, request domain.SetBudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID, month string) ([]domain.Budget, error)
	MonthChoices() []string
}

type BudgetHandler struct {
	responder
	service BudgetServiceInterface
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *BudgetHandler {
	if service == nil {
		panic("budget service must not be nil")
	}
	return &BudgetHandler{responder: newResponder(respondJSON, respondError), service: service}
}

func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	budgets, err := h.service.ListBudgets(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve budgets")
		return
	}
	h.success(w, http.StatusOK, "Budgets retrieved successfully.", budgets)
}

func (h *BudgetHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request domain.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.SetBudget(r.Context(), userID, request)
	if err != nil {
		h.serviceError(w, r, err, "Failed to set budget")
		return
	}
	h.success(w, http.StatusOK, "Budget set successfully.", budget)
}

func (h *BudgetHandler) GetMonthChoices(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userID(w, r); !ok {
		return
	}
	h.success(w, http.StatusOK, "Budget months retrieved successfully.", h.service.MonthChoices())
}
