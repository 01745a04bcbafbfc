package parser

import "github.com/ukaji3/updatepdp-go/pkg/pdp/models"

// DateColumns maps each date found in the header row to its column index,
// scanning from column B to the last used column. Cells that are not dates
// are skipped. When a date repeats, the rightmost column wins.
func DateColumns(s *Sheet, headerRow int) map[models.Date]int {
	columns := make(map[models.Date]int)
	for c := 2; c <= s.MaxCol(); c++ {
		d, ok := s.Date(headerRow, c)
		if !ok {
			continue
		}
		columns[d] = c
	}
	return columns
}
