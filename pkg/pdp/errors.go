package pdp

import (
	"errors"
	"fmt"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
)

// ErrFileNotFound indicates an input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrBaseLabelNotFound indicates the base label is absent from column A.
var ErrBaseLabelNotFound = errors.New("label not found")

// ErrCustomerLabelNotFound indicates the customer label is absent below the base row.
var ErrCustomerLabelNotFound = errors.New("label not found below base")

// ErrSheetNotFound indicates a workbook lacks a required sheet.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrColumnNotFound indicates the forecast sheet lacks a required header.
var ErrColumnNotFound = parser.ErrColumnNotFound

// Step names the update stage an error came from.
type Step string

const (
	StepForecast Step = "forecast"
	StepOpen     Step = "open"
	StepAnchors  Step = "anchors"
	StepWrite    Step = "write"
	StepSave     Step = "save"
)

// StepError represents a structural failure during an update.
type StepError struct {
	SheetName string
	Step      Step
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("update error in sheet %q (%s): %v", e.SheetName, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError.
func NewStepError(sheetName string, step Step, err error) *StepError {
	return &StepError{
		SheetName: sheetName,
		Step:      step,
		Err:       err,
	}
}
