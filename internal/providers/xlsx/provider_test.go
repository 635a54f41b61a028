package xlsx

import (
	"context"
	"testing"
	"time"

	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateLedger(t *testing.T) {
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	report := ledgerdomain.Report{
		From: day,
		To:   day,
		Entries: []ledgerdomain.ProductionEntry{
			{EntryDate: dates.ToDate(day), CustomerName: "Ravi", GlassType: "Clear", ThicknessMM: "8", Size: "48 x 36", Quantity: 2, AreaSqft: decimal.NewFromInt(24)},
		},
		Days:     []ledgerdomain.DailyTotal{{Date: day, Entries: 1, Quantity: 2, AreaSqft: decimal.NewFromInt(24)}},
		Quantity: 2,
		AreaSqft: decimal.NewFromInt(24),
	}

	r, err := New().GenerateLedger(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(r)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{registerSheet, totalsSheet}, f.GetSheetList())

	v, err := f.GetCellValue(registerSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "14/10/2026", v)

	v, err = f.GetCellValue(registerSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", v)

	v, err = f.GetCellValue(registerSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)

	v, err = f.GetCellValue(totalsSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestGenerateExpenses(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	data := ExpenseData{
		Items: []expensedomain.Expense{
			{ExpenseDate: dates.ToDate(from), Category: expensedomain.CategoryRent, Description: "Shed", PaymentMode: "Cash", Amount: decimal.NewFromInt(15000)},
		},
		Summary: expensedomain.Summary{
			From:       from,
			To:         to,
			Categories: []expensedomain.CategoryTotal{{Category: expensedomain.CategoryRent, Count: 1, Total: decimal.NewFromInt(15000)}},
			GrandTotal: decimal.NewFromInt(15000),
		},
	}

	r, err := New().GenerateExpenses(context.Background(), data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(r)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(expenseSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "Category", "Description", "Payment mode", "Amount"}, rows[0])
	assert.Equal(t, "Rent", rows[1][1])

	v, err := f.GetCellValue(summarySheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total 01/10/2026 to 31/10/2026", v)
}
