package interfaces

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sebuszqo/BudgetTracker/internal/finance/application"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

type ExportServiceInterface interface {
	ExportTransactions(ctx context.Context, userID, format string) (*application.Export, error)
}

type ExportHandler struct {
	responder
	service ExportServiceInterface
}

func NewExportHandler(service ExportServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *ExportHandler {
	if service == nil {
		panic("export service must not be nil")
	}
	return &ExportHandler{responder: newResponder(respondJSON, respondError), service: service}
}

// ExportTransactions streams the user's history as an attachment (?format=csv|xlsx).
func (h *ExportHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	export, err := h.service.ExportTransactions(r.Context(), userID, r.URL.Query().Get("format"))
	if err != nil {
		h.serviceError(w, r, err, "Failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	if err := export.Render(w); err != nil {
		// headers are already sent
		log.FromContext(r.Context()).WithComponent(log.ComponentFinance).
			ErrorContext(r.Context(), "export write failed", log.FieldOperation, log.OpExport, log.FieldError, err)
	}
}
