package models

// CellWrite records one value written into the planning sheet.
type CellWrite struct {
	// Date is the delivery date the value belongs to.
	Date Date `json:"date"`
	// Cell is the target cell name (e.g. "F82").
	Cell string `json:"cell"`
	// Value is the written cab sum.
	Value float64 `json:"value"`
}

// Anchors holds the two label rows located in column A.
type Anchors struct {
	// BaseRow is the row holding the base label (1-based).
	BaseRow int `json:"base_row"`
	// CustomerRow is the first row below BaseRow holding the customer label.
	CustomerRow int `json:"customer_row"`
}

// Report summarizes one update run.
type Report struct {
	// PlanningPath is the planning workbook path that was updated.
	PlanningPath string `json:"planning_path"`
	// ForecastPath is the forecast workbook path that was read.
	ForecastPath string `json:"forecast_path"`
	// RowsRead is the number of forecast data rows read.
	RowsRead int `json:"rows_read"`
	// RowsKept is the number of rows that passed the rate and cab filter.
	RowsKept int `json:"rows_kept"`
	// Anchors are the located label rows.
	Anchors Anchors `json:"anchors"`
	// HeaderDates is the number of distinct dates found in the header row.
	HeaderDates int `json:"header_dates"`
	// Writes lists every cell written, in ascending date order.
	Writes []CellWrite `json:"writes"`
	// Unmatched lists aggregated dates with no header column.
	Unmatched []Date `json:"unmatched,omitempty"`
	// DryRun is true when the workbook was not saved.
	DryRun bool `json:"dry_run"`
}
