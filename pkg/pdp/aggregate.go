package pdp

import (
	"math"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
	"go.uber.org/zap"
)

// NormalizeRates parses every fiability rate and brings the column to a
// fractional scale. Unparsable rates become NaN, which fails every range
// comparison. If the largest parsed rate exceeds 1 the whole column is
// divided by 100; the scale is decided once for the column, never per row.
func NormalizeRates(raw []string) []float64 {
	rates := make([]float64, len(raw))
	peak := math.Inf(-1)
	for i, s := range raw {
		v, ok := parser.ParseRate(s)
		if !ok {
			rates[i] = math.NaN()
			continue
		}
		rates[i] = v
		peak = math.Max(peak, v)
	}

	if peak > 1 {
		for i := range rates {
			rates[i] /= 100
		}
	}
	return rates
}

// Aggregate filters rows by rate range and cab presence and sums cab counts
// per delivery date. It returns the sums and the number of rows that passed
// the filter. Kept rows without a delivery date add nothing; kept rows whose
// cab count does not parse still register their date with nothing added.
func Aggregate(rows []models.ForecastRow, rateMin, rateMax float64, log *zap.Logger) (models.DailySums, int) {
	if log == nil {
		log = zap.NewNop()
	}

	raw := make([]string, len(rows))
	for i, row := range rows {
		raw[i] = row.RateRaw
	}
	rates := NormalizeRates(raw)

	sums := make(models.DailySums)
	kept := 0
	for i, row := range rows {
		rate := rates[i]
		if !(rate >= rateMin && rate <= rateMax) {
			log.Debug("row excluded by rate", zap.Int("row", row.R), zap.String("rate", row.RateRaw))
			continue
		}
		if !row.HasCab() {
			log.Debug("row excluded by empty cab", zap.Int("row", row.R))
			continue
		}
		kept++

		if !row.HasDelivery {
			log.Debug("row has no delivery date", zap.Int("row", row.R))
			continue
		}
		cab, ok := parser.ParseNumber(row.CabRaw)
		if !ok {
			log.Debug("cab count not numeric", zap.Int("row", row.R), zap.String("cab", row.CabRaw))
		}
		sums[row.Delivery] += cab
	}

	return sums, kept
}
