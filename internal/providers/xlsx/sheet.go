package xlsx

import (
	"github.com/xuri/excelize/v2"
)

type styles struct {
	header int
	total  int
	money  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return styles{}, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})
	if err != nil {
		return styles{}, err
	}
	numFmt := "#,##0.00"
	s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return styles{}, err
	}
	return s, nil
}

// sheetWriter appends rows to one sheet. The first error sticks in err and
// later calls do nothing.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles styles
	next   int
	err    error
}

func (w *sheetWriter) header(titles ...string) {
	values := make([]any, len(titles))
	for i, title := range titles {
		values[i] = title
	}
	w.put(values, w.styles.header)
	if w.err == nil {
		w.err = w.f.SetPanes(w.sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	}
	if w.err == nil {
		last, _ := excelize.ColumnNumberToName(len(titles))
		w.err = w.f.SetColWidth(w.sheet, "A", last, 16)
	}
}

func (w *sheetWriter) row(values ...any) {
	w.put(values, 0)
}

func (w *sheetWriter) total(values ...any) {
	w.put(values, w.styles.total)
}

func (w *sheetWriter) put(values []any, style int) {
	if w.err != nil {
		return
	}
	w.next++
	first, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, first, &values); err != nil {
		w.err = err
		return
	}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.next)
		s := style
		if _, ok := v.(float64); ok && style == 0 {
			s = w.styles.money
		}
		if s == 0 {
			continue
		}
		if err := w.f.SetCellStyle(w.sheet, cell, cell, s); err != nil {
			w.err = err
			return
		}
	}
}
