package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

type SummaryServiceInterface interface {
	ComputeMonthSummary(ctx context.Context, userID string, referenceDate time.Time) (*domain.MonthSummary, error)
}

type DashboardHandler struct {
	responder
	service SummaryServiceInterface
	now     func() time.Time
}

func NewDashboardHandler(service SummaryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *DashboardHandler {
	if service == nil {
		panic("summary service must not be nil")
	}
	return &DashboardHandler{responder: newResponder(respondJSON, respondError), service: service, now: time.Now}
}

// GetDashboard summarises the month of ?date=YYYY-MM-DD, defaulting to today.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	referenceDate := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		referenceDate = parsed
	}

	summary, err := h.service.ComputeMonthSummary(r.Context(), userID, referenceDate)
	if err != nil {
		h.serviceError(w, r, err, "Failed to compute dashboard")
		return
	}
	h.success(w, http.StatusOK, "Dashboard computed successfully.", summary)
}
