package parser

import (
	"testing"
	"time"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"10", 10, true},
		{" 12.5 ", 12.5, true},
		{"-3", -3, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"10 pcs", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseNumber(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"75%", 75, true},
		{"0.75", 0.75, true},
		{" 60 % ", 60, true},
		{"%90%", 90, true},
		{"%", 0, false},
		{"high", 0, false},
		{"inf%", 0, false},
		{"-Infinity", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseRate(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseRate(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseDate(t *testing.T) {
	jan5 := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-01-05", jan5, true},
		{"2024-01-05 13:45:00", jan5.Add(13*time.Hour + 45*time.Minute), true},
		{"2024-01-05T00:00:00Z", jan5, true},
		{"2024/01/05", jan5, true},
		{"01/05/2024", jan5, true},
		{"1/5/2024", jan5, true},
		{"Jan 5, 2024", jan5, true},
		{"5 January 2024", jan5, true},
		{" 2024-01-05 ", jan5, true},
		{"05/01/2024", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), true},
		{"25/01/2024", time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC), true},
		{"25/1/2024", time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC), true},
		{"13.01.2024", time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC), true},
		{"31-12-2024", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), true},
		{"25/01/2024 08:30:00", time.Date(2024, time.January, 25, 8, 30, 0, 0, time.UTC), true},
		{"25/13/2024", time.Time{}, false},
		{"Week 1", time.Time{}, false},
		{"2024-13-45", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		result, ok := ParseDate(tt.input)
		if ok != tt.ok || !result.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.want, tt.ok)
		}
	}
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }
	tests := []struct {
		id       int
		custom   *string
		expected bool
	}{
		{0, nil, false},
		{2, nil, false},
		{9, nil, false},
		{14, nil, true},
		{17, nil, true},
		{20, nil, false},
		{22, nil, true},
		{31, nil, true},
		{46, nil, false},
		{164, custom("dd/mm/yyyy"), true},
		{164, custom("[$-40C]d mmmm yyyy"), true},
		{164, custom("mmm-yy"), true},
		{164, custom("hh:mm"), false},
		{164, custom(`0.0 "days"`), false},
		{164, custom("#,##0;[Red]-#,##0"), false},
		{14, custom(""), true},
	}

	for _, tt := range tests {
		result := isDateNumFmt(tt.id, tt.custom)
		if result != tt.expected {
			code := "<nil>"
			if tt.custom != nil {
				code = *tt.custom
			}
			t.Errorf("isDateNumFmt(%d, %q) = %v, expected %v", tt.id, code, result, tt.expected)
		}
	}
}
