package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds is the used range of a sheet, 1-based and inclusive.
type Bounds struct {
	MaxRow int
	MaxCol int
}

// sheetBounds combines the sheet's dimension record with the bounds of the
// loaded rows. The dimension may be stale or missing, so the larger value wins.
func sheetBounds(f *excelize.File, sheetName string, rows [][]string) Bounds {
	b := dataBounds(rows)
	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return b
	}
	if d, ok := parseDimension(dim); ok {
		b.MaxRow = max(b.MaxRow, d.MaxRow)
		b.MaxCol = max(b.MaxCol, d.MaxCol)
	}
	return b
}

// parseDimension parses a reference like $A$1:$D$10 or A1.
func parseDimension(ref string) (Bounds, bool) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return Bounds{}, false
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return Bounds{}, false
	}

	col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return Bounds{}, false
	}
	return Bounds{MaxRow: row, MaxCol: col}, true
}

// dataBounds finds the last row and column holding a non-empty cell.
func dataBounds(rows [][]string) Bounds {
	var b Bounds
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > b.MaxRow {
				b.MaxRow = rowIdx + 1
			}
			if colIdx+1 > b.MaxCol {
				b.MaxCol = colIdx + 1
			}
		}
	}
	return b
}
