// Package xlsx writes the production register and expense book as spreadsheets.
package xlsx

import (
	"bytes"
	"context"
	"io"
	"time"

	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
)

type Provider interface {
	GenerateLedger(ctx context.Context, report ledgerdomain.Report) (io.Reader, error)
	GenerateExpenses(ctx context.Context, data ExpenseData) (io.Reader, error)
}

// ExpenseData is an expense range with its category summary.
type ExpenseData struct {
	Items   []expensedomain.Expense
	Summary expensedomain.Summary
}

var Module = fx.Module("providers.xlsx",
	fx.Provide(New),
)

type ExcelProvider struct{}

func New() Provider {
	return &ExcelProvider{}
}

const (
	registerSheet = "Register"
	totalsSheet   = "Daily Totals"
	expenseSheet  = "Expenses"
	summarySheet  = "Summary"
)

func (p *ExcelProvider) GenerateLedger(ctx context.Context, report ledgerdomain.Report) (io.Reader, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return nil, err
	}
	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := sheetWriter{f: f, sheet: registerSheet, styles: styles}
	w.header("Date", "Customer", "Glass type", "Thickness (mm)", "Size", "Quantity", "Area (sq.ft)", "Notes")
	for _, entry := range report.Entries {
		w.row(
			dates.FormatDate(entry.EntryDate),
			entry.CustomerName,
			entry.GlassType,
			entry.ThicknessMM,
			entry.Size,
			entry.Quantity,
			entry.AreaSqft.Round(2).InexactFloat64(),
			entry.Notes,
		)
	}
	w.total("Total", "", "", "", "", report.Quantity, report.AreaSqft.Round(2).InexactFloat64(), "")
	if w.err != nil {
		return nil, w.err
	}

	w = sheetWriter{f: f, sheet: totalsSheet, styles: styles}
	w.header("Date", "Entries", "Quantity", "Area (sq.ft)")
	for _, day := range report.Days {
		w.row(dates.Format(day.Date), day.Entries, day.Quantity, day.AreaSqft.Round(2).InexactFloat64())
	}
	w.total(rangeLabel(report.From, report.To), len(report.Entries), report.Quantity, report.AreaSqft.Round(2).InexactFloat64())
	if w.err != nil {
		return nil, w.err
	}

	return write(f)
}

func (p *ExcelProvider) GenerateExpenses(ctx context.Context, data ExpenseData) (io.Reader, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := sheetWriter{f: f, sheet: expenseSheet, styles: styles}
	w.header("Date", "Category", "Description", "Payment mode", "Amount")
	for _, item := range data.Items {
		w.row(
			dates.FormatDate(item.ExpenseDate),
			string(item.Category),
			item.Description,
			item.PaymentMode,
			item.Amount.Round(2).InexactFloat64(),
		)
	}
	if w.err != nil {
		return nil, w.err
	}

	w = sheetWriter{f: f, sheet: summarySheet, styles: styles}
	w.header("Category", "Entries", "Total")
	for _, row := range data.Summary.Categories {
		w.row(string(row.Category), row.Count, row.Total.Round(2).InexactFloat64())
	}
	w.total(rangeLabel(data.Summary.From, data.Summary.To), "", data.Summary.GrandTotal.Round(2).InexactFloat64())
	if w.err != nil {
		return nil, w.err
	}

	return write(f)
}

func write(f *excelize.File) (io.Reader, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func rangeLabel(from, to time.Time) string {
	return "Total " + dates.Format(from) + " to " + dates.Format(to)
}
