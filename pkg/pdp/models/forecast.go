package models

import "sort"

// ForecastRow is one data row of the forecast sheet, as read before normalization.
type ForecastRow struct {
	// R is the sheet row index (1-based).
	R int `json:"r"`
	// RateRaw is the raw Fiability rate cell text.
	RateRaw string `json:"rate_raw"`
	// CabRaw is the raw EnerOne B-Cab cell text. Empty means the cell is null.
	CabRaw string `json:"cab_raw"`
	// Delivery is the parsed Livraison date (valid only when HasDelivery is true).
	Delivery Date `json:"delivery"`
	// HasDelivery is false when the Livraison cell is empty or not a date.
	HasDelivery bool `json:"has_delivery"`
}

// HasCab reports whether the cab cell is present (non-null).
func (r ForecastRow) HasCab() bool {
	return r.CabRaw != ""
}

// DailySums maps a delivery date to the sum of cab counts for that date.
type DailySums map[Date]float64

// Dates returns the keys in ascending order.
func (s DailySums) Dates() []Date {
	dates := make([]Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
