package interfaces

import (
	"errors"
	"net/http"
	"strconv"

	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})

type RespondErrorFunc func(w http.ResponseWriter, status int, message string, errors ...[]string)

type responder struct {
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func newResponder(respondJSON RespondJSONFunc, respondError RespondErrorFunc) responder {
	if respondJSON == nil || respondError == nil {
		panic("response functions must not be nil")
	}
	return responder{respondJSON: respondJSON, respondError: respondError}
}

func (h responder) success(w http.ResponseWriter, status int, message string, data interface{}) {
	h.respondJSON(w, status, map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// userID reads the id the access-token middleware stored on the request.
func (h responder) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

func (h responder) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// serviceError maps typed service errors onto HTTP statuses; anything else is logged and hidden.
func (h responder) serviceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validationErrors *financeErrors.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsUnauthorizedError(err):
		h.respondError(w, http.StatusUnauthorized, err.Error())
	case financeErrors.IsNotFoundError(err):
		h.respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsConflictError(err):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		log.FromContext(r.Context()).WithComponent(log.ComponentFinance).
			ErrorContext(r.Context(), fallback, log.FieldError, err, log.FieldPath, r.URL.Path)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
