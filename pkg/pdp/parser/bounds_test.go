package parser

import "testing"

func TestParseDimension(t *testing.T) {
	tests := []struct {
		ref      string
		expected Bounds
		ok       bool
	}{
		{"A1:D10", Bounds{MaxRow: 10, MaxCol: 4}, true},
		{"$A$1:$AA$200", Bounds{MaxRow: 200, MaxCol: 27}, true},
		{"C7", Bounds{MaxRow: 7, MaxCol: 3}, true},
		{"", Bounds{}, false},
		{"A1:B2:C3", Bounds{}, false},
		{"bogus", Bounds{}, false},
	}

	for _, tt := range tests {
		result, ok := parseDimension(tt.ref)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("parseDimension(%q) = (%+v, %v), expected (%+v, %v)",
				tt.ref, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestDataBounds(t *testing.T) {
	rows := [][]string{
		{"a", "", ""},
		{},
		{"", "", "", "x"},
		{"", ""},
	}
	got := dataBounds(rows)
	want := Bounds{MaxRow: 3, MaxCol: 4}
	if got != want {
		t.Errorf("dataBounds() = %+v, expected %+v", got, want)
	}

	if got := dataBounds(nil); got != (Bounds{}) {
		t.Errorf("dataBounds(nil) = %+v, expected zero", got)
	}
}
