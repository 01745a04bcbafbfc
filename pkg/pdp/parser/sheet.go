package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Sheet is a cell grid over one worksheet of an open workbook.
// Reads come from a raw snapshot taken when the sheet is opened;
// writes go straight to the workbook.
type Sheet struct {
	f        *excelize.File
	name     string
	rows     [][]string
	bounds   Bounds
	date1904 bool

	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

// OpenSheet snapshots the raw cell values of sheetName.
func OpenSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	if !hasSheet(f, sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return &Sheet{
		f:          f,
		name:       sheetName,
		rows:       rows,
		bounds:     sheetBounds(f, sheetName, rows),
		date1904:   date1904,
		dateStyles: make(map[int]bool),
	}, nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// MaxRow returns the last used row (1-based).
func (s *Sheet) MaxRow() int {
	return s.bounds.MaxRow
}

// MaxCol returns the last used column (1-based).
func (s *Sheet) MaxCol() int {
	return s.bounds.MaxCol
}

// Value returns the raw text of the cell at (row, col), or "" when empty.
func (s *Sheet) Value(row, col int) string {
	if row < 1 || row > len(s.rows) {
		return ""
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// Date interprets the cell at (row, col) as a calendar date.
// Serial numbers count only when the cell has a date number format;
// text is parsed with ParseDate. Anything else yields ok == false.
func (s *Sheet) Date(row, col int) (models.Date, bool) {
	v := s.Value(row, col)
	if v == "" {
		return models.Date{}, false
	}

	if serial, ok := ParseNumber(v); ok {
		if !s.isDateCell(row, col) {
			return models.Date{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, s.date1904)
		if err != nil {
			return models.Date{}, false
		}
		return models.DateOf(t), true
	}

	t, ok := ParseDate(v)
	if !ok {
		return models.Date{}, false
	}
	return models.DateOf(t), true
}

// SetNumber writes v into (row, col), replacing any existing value,
// and returns the cell name.
func (s *Sheet) SetNumber(row, col int, v float64) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	if err := s.f.SetCellFloat(s.name, cell, v, -1, 64); err != nil {
		return "", err
	}
	return cell, nil
}

// hasSheet matches the sheet name exactly; excelize's own lookup ignores case.
func hasSheet(f *excelize.File, sheetName string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheetName {
			return true
		}
	}
	return false
}

func (s *Sheet) isDateCell(row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	idx, err := s.f.GetCellStyle(s.name, cell)
	if err != nil {
		return false
	}
	if isDate, ok := s.dateStyles[idx]; ok {
		return isDate
	}

	isDate := false
	if style, err := s.f.GetStyle(idx); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	s.dateStyles[idx] = isDate
	return isDate
}
