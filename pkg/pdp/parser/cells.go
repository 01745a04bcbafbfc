// Package parser reads forecast and planning sheets through excelize.
//
// All lenient parsing lives in this file: every helper returns (value, ok) and
// never an error, so malformed cells turn into exclusions instead of failures.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when a date arrives as text.
// Numeric forms are read month-first; the day-first forms after them only
// match when the leading number cannot be a month.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"01.02.2006",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
}

// ParseNumber parses s as a float after trimming whitespace.
// NaN and infinities are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseRate strips every '%' from s and parses the remainder as a number.
// The result is not scaled: "75%" yields 75.
func ParseRate(s string) (float64, bool) {
	return ParseNumber(strings.ReplaceAll(s, "%", ""))
}

// ParseDate parses a textual date using the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isDateNumFmt reports whether a built-in number format id or a custom format
// code renders a serial number as a date.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for day or year tokens outside quoted literals,
// bracketed sections and escaped characters.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}
	stripped := strings.ToLower(b.String())
	// The first section is enough; the rest only cover negatives and text.
	if idx := strings.IndexByte(stripped, ';'); idx >= 0 {
		stripped = stripped[:idx]
	}
	return strings.ContainsAny(stripped, "yd") || strings.Contains(stripped, "mmm")
}
