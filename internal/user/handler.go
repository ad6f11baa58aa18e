package user

import (
	"encoding/json"
	"errors"
	"net/http"

	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

type Handler struct {
	userService  Service
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewHandler(
	userService Service,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *Handler {
	return &Handler{
		userService:  userService,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		var validationErrors *financeErrors.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
		case errors.Is(err, ErrUsernameTaken):
			h.respondError(w, http.StatusConflict, err.Error())
		default:
			h.respondError(w, http.StatusInternalServerError, "Could not register user")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Registration successful! Please log in.",
		"data": map[string]string{
			"user_id": user.ID,
		},
	})
}

func (h *Handler) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Could not retrieve user profile")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Profile retrieved successfully.",
		"data":    user,
	})
}
