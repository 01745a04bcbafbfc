// Package pdp updates the Customer Opportunities row of a PDP planning
// workbook from an EMEA forecast workbook.
package pdp

import (
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
	"go.uber.org/zap"
)

// Options configures an update run.
type Options struct {
	// ForecastSheet is the forecast sheet name.
	ForecastSheet string
	// Columns names the forecast headers.
	Columns parser.ForecastColumns
	// RateMin and RateMax bound the normalized fiability rate, inclusive.
	RateMin float64
	RateMax float64

	// PlanningSheet is the planning sheet name.
	PlanningSheet string
	// BaseLabel is the column A text of the base row.
	BaseLabel string
	// CustomerLabel is the column A text of the target row, searched below the base row.
	CustomerLabel string
	// HeaderRow is the row holding delivery dates (1-based).
	HeaderRow int

	// DryRun runs every step but leaves the planning workbook unsaved.
	DryRun bool
	// Logger receives progress logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options for the B-CAB planning sheet.
func DefaultOptions() Options {
	return Options{
		ForecastSheet: "Feuil 1",
		Columns:       parser.DefaultForecastColumns(),
		RateMin:       0.60,
		RateMax:       0.90,
		PlanningSheet: "B-CAB",
		BaseLabel:     "B-CAB L E 0.5C",
		CustomerLabel: "Customer Opportunities",
		HeaderRow:     78,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
