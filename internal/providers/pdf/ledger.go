package pdf

import (
	"context"
	"io"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// LedgerData is a printed page range of the production register.
type LedgerData struct {
	Company Company
	From    string
	To      string
	Entries []LedgerEntry
	Days    []LedgerDay

	TotalQuantity int64
	TotalArea     string
}

type LedgerEntry struct {
	Date      string
	Customer  string
	GlassType string
	Thickness string
	Size      string
	Quantity  int
	AreaSqft  string
}

type LedgerDay struct {
	Date     string
	Entries  int
	Quantity int64
	AreaSqft string
}

func (p *PDFProvider) GenerateLedger(ctx context.Context, ledger LedgerData) (io.Reader, error) {
	m := newDocument()
	addLetterhead(m, ledger.Company, "Production Register")

	m.AddRow(8,
		text.NewCol(12, ledger.From+" to "+ledger.To, props.Text{Size: 10, Style: fontstyle.Bold}),
	)

	m.AddRow(8,
		text.NewCol(2, "Date", headerText(align.Left)),
		text.NewCol(3, "Customer", headerText(align.Left)),
		text.NewCol(2, "Glass", headerText(align.Left)),
		text.NewCol(1, "mm", headerText(align.Right)),
		text.NewCol(2, "Size", headerText(align.Left)),
		text.NewCol(1, "Qty", headerText(align.Right)),
		text.NewCol(1, "Sq.ft", headerText(align.Right)),
	)
	for _, entry := range ledger.Entries {
		m.AddRow(6,
			text.NewCol(2, entry.Date, cellText(align.Left)),
			text.NewCol(3, entry.Customer, cellText(align.Left)),
			text.NewCol(2, entry.GlassType, cellText(align.Left)),
			text.NewCol(1, entry.Thickness, cellText(align.Right)),
			text.NewCol(2, entry.Size, cellText(align.Left)),
			text.NewCol(1, strconv.Itoa(entry.Quantity), cellText(align.Right)),
			text.NewCol(1, entry.AreaSqft, cellText(align.Right)),
		)
	}
	if len(ledger.Entries) == 0 {
		m.AddRow(8, text.NewCol(12, "No production recorded.", props.Text{Size: 9, Top: 2}))
	}

	m.AddRow(10,
		text.NewCol(12, "Daily totals", props.Text{Size: 10, Style: fontstyle.Bold, Top: 4}),
	)
	for _, day := range ledger.Days {
		m.AddRow(6,
			text.NewCol(2, day.Date, cellText(align.Left)),
			text.NewCol(4, strconv.Itoa(day.Entries)+" entries", cellText(align.Left)),
			col.New(4),
			text.NewCol(1, strconv.FormatInt(day.Quantity, 10), cellText(align.Right)),
			text.NewCol(1, day.AreaSqft, cellText(align.Right)),
		)
	}

	m.AddRow(8,
		text.NewCol(10, "Total", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2}),
		text.NewCol(1, strconv.FormatInt(ledger.TotalQuantity, 10), props.Text{Size: 9, Style: fontstyle.Bold, Top: 2, Align: align.Right}),
		text.NewCol(1, ledger.TotalArea, props.Text{Size: 9, Style: fontstyle.Bold, Top: 2, Align: align.Right}),
	)

	return render(m)
}
