package interfaces

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetTracker/internal/finance/application"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

func TestExportTransactions_SetsAttachmentHeaders(t *testing.T) {
	mockService := &MockExportService{export: application.NewExport(
		"budget_transactions_alice_2024-05-20.csv", "text/csv",
		func(w io.Writer) error {
			_, err := io.WriteString(w, "Date,Type,Amount,Category,Description\n")
			return err
		},
	)}
	w := httptest.NewRecorder()

	NewExportHandler(mockService, respondJSON, respondError).
		ExportTransactions(w, authedRequest(http.MethodGet, "/api/protected/export?format=csv", nil, "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockService.format)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="budget_transactions_alice_2024-05-20.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Date,Type,Amount"))
}

func TestExportTransactions_BadFormat(t *testing.T) {
	w := httptest.NewRecorder()
	NewExportHandler(&MockExportService{err: financeErrors.NewValidationError("format must be one of: csv, xlsx")}, respondJSON, respondError).
		ExportTransactions(w, authedRequest(http.MethodGet, "/api/protected/export?format=pdf", nil, "u1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
