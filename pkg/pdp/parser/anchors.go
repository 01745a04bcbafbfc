package parser

// labelColumn is column A, where row labels live.
const labelColumn = 1

// FindLabelRow scans column A from row start down to the last used row and
// returns the first row whose raw text equals label exactly.
func FindLabelRow(s *Sheet, label string, start int) (int, bool) {
	if start < 1 {
		start = 1
	}
	for r := start; r <= s.MaxRow(); r++ {
		if s.Value(r, labelColumn) == label {
			return r, true
		}
	}
	return 0, false
}
