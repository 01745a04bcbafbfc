// Package output serializes update reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
)

// ToJSON serializes a run report, indented when pretty is set.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
