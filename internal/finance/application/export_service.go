package application

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	exportSheet = "Transactions"
)

var exportHeader = []string{"Date", "Type", "Amount", "Category", "Description"}

type ExportService struct {
	transactions domain.TransactionRepository
	users        UserLookup
	now          func() time.Time
}

func NewExportService(transactions domain.TransactionRepository, users UserLookup) *ExportService {
	return &ExportService{transactions: transactions, users: users, now: time.Now}
}

// Export is a rendered transaction history ready to be downloaded.
type Export struct {
	FileName    string
	ContentType string
	write       func(w io.Writer) error
}

// NewExport wraps a renderer that writes the file body on demand. ExportTransactions
// builds its CSV and XLSX exports with it; other formats can plug in the same way.
func NewExport(fileName, contentType string, write func(w io.Writer) error) *Export {
	return &Export{FileName: fileName, ContentType: contentType, write: write}
}

// Render writes the file body to w.
func (e *Export) Render(w io.Writer) error {
	return e.write(w)
}

// ExportTransactions loads the user's history and prepares it in the requested format.
func (s *ExportService) ExportTransactions(ctx context.Context, userID, format string) (*Export, error) {
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatXLSX {
		return nil, financeErrors.NewValidationError("format must be one of: csv, xlsx")
	}

	username, err := s.users.LookupUsername(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fileName := ExportFileName(username, s.now(), format)
	if format == ExportFormatXLSX {
		return NewExport(fileName, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			func(w io.Writer) error { return WriteXLSX(w, transactions) }), nil
	}
	return NewExport(fileName, "text/csv", func(w io.Writer) error { return WriteCSV(w, transactions) }), nil
}

func ExportFileName(username string, date time.Time, format string) string {
	return fmt.Sprintf("budget_transactions_%s_%s.%s", username, domain.FormatDate(date), format)
}

// FormatAmount renders an amount as dollars with two decimals, e.g. "$1200.00".
func FormatAmount(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

func exportRow(t domain.Transaction) []string {
	return []string{domain.FormatDate(t.Date), t.Type, FormatAmount(t.Amount), t.Category, t.Description}
}

// WriteCSV writes the header and one row per transaction, in the given order.
func WriteCSV(w io.Writer, transactions []domain.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range transactions {
		if err := writer.Write(exportRow(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteXLSX(w io.Writer, transactions []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, t := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(t)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
