package pdp

import (
	"fmt"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
)

// LocateAnchors finds the base label in column A, then the first customer
// label strictly below it.
func LocateAnchors(s *parser.Sheet, baseLabel, customerLabel string) (models.Anchors, error) {
	baseRow, ok := parser.FindLabelRow(s, baseLabel, 1)
	if !ok {
		return models.Anchors{}, fmt.Errorf("%w: %q in column A", ErrBaseLabelNotFound, baseLabel)
	}

	customerRow, ok := parser.FindLabelRow(s, customerLabel, baseRow+1)
	if !ok {
		return models.Anchors{}, fmt.Errorf("%w: %q below %q (row %d)", ErrCustomerLabelNotFound, customerLabel, baseLabel, baseRow)
	}

	return models.Anchors{BaseRow: baseRow, CustomerRow: customerRow}, nil
}
