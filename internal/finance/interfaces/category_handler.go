package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, userID string) ([]string, error)
	ListCustomCategories(ctx context.Context, userID string) ([]domain.Category, error)
	AddCategory(ctx context.Context, userID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID int64) error
}

type CategoryHandler struct {
	responder
	service CategoryServiceInterface
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CategoryHandler {
	if service == nil {
		panic("category service must not be nil")
	}
	return &CategoryHandler{responder: newResponder(respondJSON, respondError), service: service}
}

// GetCategories lists every usable category name, or the stored custom rows with ?custom=true.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("custom") == "true" {
		categories, err := h.service.ListCustomCategories(r.Context(), userID)
		if err != nil {
			h.serviceError(w, r, err, "Failed to retrieve categories")
			return
		}
		h.success(w, http.StatusOK, "Categories retrieved successfully.", categories)
		return
	}

	names, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err, "Failed to retrieve categories")
		return
	}
	h.success(w, http.StatusOK, "Categories retrieved successfully.", names)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request domain.NewCategory
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.AddCategory(r.Context(), userID, request.Name)
	if err != nil {
		h.serviceError(w, r, err, "Failed to create category")
		return
	}
	h.success(w, http.StatusCreated, "Category added successfully.", category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	categoryID, ok := h.pathID(w, r, "categoryID")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		h.serviceError(w, r, err, "Failed to delete category")
		return
	}
	h.success(w, http.StatusOK, "Category deleted.", nil)
}
