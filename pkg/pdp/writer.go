package pdp

import (
	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
)

// ApplySums writes each daily sum into row at the column indexed for its date,
// in ascending date order. Dates without a column are returned as unmatched
// and left unwritten.
func ApplySums(s *parser.Sheet, sums models.DailySums, columns map[models.Date]int, row int) ([]models.CellWrite, []models.Date, error) {
	var writes []models.CellWrite
	var unmatched []models.Date

	for _, d := range sums.Dates() {
		col, ok := columns[d]
		if !ok {
			unmatched = append(unmatched, d)
			continue
		}
		value := sums[d]
		cell, err := s.SetNumber(row, col, value)
		if err != nil {
			return writes, unmatched, err
		}
		writes = append(writes, models.CellWrite{Date: d, Cell: cell, Value: value})
	}

	return writes, unmatched, nil
}
