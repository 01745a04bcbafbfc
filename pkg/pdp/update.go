package pdp

import (
	"context"
	"fmt"
	"os"

	"github.com/ukaji3/updatepdp-go/pkg/pdp/models"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Update aggregates the forecast workbook at forecastPath and writes the daily
// sums into the planning workbook at planningPath, saving it in place.
// The planning file is only written after every step has succeeded.
func Update(ctx context.Context, planningPath, forecastPath string, opts Options) (*models.Report, error) {
	log := opts.logger()

	report := &models.Report{
		PlanningPath: planningPath,
		ForecastPath: forecastPath,
		DryRun:       opts.DryRun,
	}

	sums, err := loadForecast(forecastPath, opts, report)
	if err != nil {
		return nil, err
	}
	log.Info("forecast aggregated",
		zap.Int("rows_read", report.RowsRead),
		zap.Int("rows_kept", report.RowsKept),
		zap.Int("dates", len(sums)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := openWorkbook(planningPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := parser.OpenSheet(f, opts.PlanningSheet)
	if err != nil {
		return nil, NewStepError(opts.PlanningSheet, StepOpen, err)
	}

	anchors, err := LocateAnchors(sheet, opts.BaseLabel, opts.CustomerLabel)
	if err != nil {
		return nil, NewStepError(opts.PlanningSheet, StepAnchors, err)
	}
	report.Anchors = anchors
	log.Info("anchors located",
		zap.Int("base_row", anchors.BaseRow),
		zap.Int("customer_row", anchors.CustomerRow))

	columns := parser.DateColumns(sheet, opts.HeaderRow)
	report.HeaderDates = len(columns)

	writes, unmatched, err := ApplySums(sheet, sums, columns, anchors.CustomerRow)
	if err != nil {
		return nil, NewStepError(opts.PlanningSheet, StepWrite, err)
	}
	report.Writes = writes
	report.Unmatched = unmatched
	for _, d := range unmatched {
		log.Debug("no header column for date", zap.Stringer("date", d))
	}
	log.Info("cells written",
		zap.Int("header_dates", len(columns)),
		zap.Int("written", len(writes)),
		zap.Int("unmatched", len(unmatched)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.DryRun {
		log.Info("dry run, workbook not saved", zap.String("path", planningPath))
		return report, nil
	}
	if err := f.Save(); err != nil {
		return nil, NewStepError(opts.PlanningSheet, StepSave, err)
	}
	log.Info("workbook saved", zap.String("path", planningPath))

	return report, nil
}

// loadForecast reads and aggregates the forecast sheet, closing the workbook
// before the planning workbook is opened.
func loadForecast(path string, opts Options, report *models.Report) (models.DailySums, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parser.ReadForecast(f, opts.ForecastSheet, opts.Columns)
	if err != nil {
		return nil, NewStepError(opts.ForecastSheet, StepForecast, err)
	}

	sums, kept := Aggregate(rows, opts.RateMin, opts.RateMax, opts.logger())
	report.RowsRead = len(rows)
	report.RowsKept = kept
	return sums, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}
