package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound indicates a required header is missing from the forecast sheet.
var ErrColumnNotFound = errors.New("column not found")

// ForecastColumns names the forecast headers read by ReadForecast.
type ForecastColumns struct {
	Rate     string
	Cab      string
	Delivery string
}

// DefaultForecastColumns returns the headers of the EMEA forecast export.
func DefaultForecastColumns() ForecastColumns {
	return ForecastColumns{
		Rate:     "Fiability rate",
		Cab:      "EnerOne B-Cab",
		Delivery: "Livraison",
	}
}

// ReadForecast reads the data rows of a forecast sheet whose first row holds
// the headers. Cells are kept raw except the delivery date, which is parsed
// leniently. Blank rows are skipped.
func ReadForecast(f *excelize.File, sheetName string, cols ForecastColumns) ([]models.ForecastRow, error) {
	s, err := OpenSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	header := headerIndex(s)
	rateCol, err := lookupColumn(header, cols.Rate)
	if err != nil {
		return nil, err
	}
	cabCol, err := lookupColumn(header, cols.Cab)
	if err != nil {
		return nil, err
	}
	dateCol, err := lookupColumn(header, cols.Delivery)
	if err != nil {
		return nil, err
	}

	var result []models.ForecastRow
	for r := 2; r <= s.MaxRow(); r++ {
		if isBlankRow(s, r) {
			continue
		}
		row := models.ForecastRow{
			R:       r,
			RateRaw: s.Value(r, rateCol),
			CabRaw:  s.Value(r, cabCol),
		}
		row.Delivery, row.HasDelivery = s.Date(r, dateCol)
		result = append(result, row)
	}

	return result, nil
}

// headerIndex maps header text in row 1 to its first column (1-based).
func headerIndex(s *Sheet) map[string]int {
	index := make(map[string]int)
	for c := 1; c <= s.MaxCol(); c++ {
		name := s.Value(1, c)
		if name == "" {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = c
		}
	}
	return index
}

func lookupColumn(header map[string]int, name string) (int, error) {
	col, ok := header[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col, nil
}

func isBlankRow(s *Sheet, r int) bool {
	if r > len(s.rows) {
		return true
	}
	for _, v := range s.rows[r-1] {
		if v != "" {
			return false
		}
	}
	return true
}
