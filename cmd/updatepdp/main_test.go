package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/updatepdp-go/pkg/pdp"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func init() {
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeWorkbooks(t *testing.T) (planning, forecast string) {
	t.Helper()
	dir := t.TempDir()

	p := excelize.NewFile()
	defer p.Close()
	require.NoError(t, p.SetSheetName("Sheet1", "B-CAB"))
	require.NoError(t, p.SetCellValue("B-CAB", "A80", "B-CAB L E 0.5C"))
	require.NoError(t, p.SetCellValue("B-CAB", "A82", "Customer Opportunities"))
	require.NoError(t, p.SetCellValue("B-CAB", "C78", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	planning = filepath.Join(dir, "PDP.xlsx")
	require.NoError(t, p.SaveAs(planning))

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Feuil 1"))
	rows := [][]interface{}{
		{"Fiability rate", "EnerOne B-Cab", "Livraison"},
		{"65%", 10, "2024-01-05"},
		{"65%", 5, "2024-01-05"},
		{"95%", 100, "2024-01-05"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Feuil 1", cell, &row))
	}
	forecast = filepath.Join(dir, "Prevision_EMEA.xlsx")
	require.NoError(t, f.SaveAs(forecast))

	return planning, forecast
}

func TestUsageOnWrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"only.xlsx"}, {"a.xlsx", "b.xlsx", "c.xlsx"}} {
		out, err := execute(t, args...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errUsage))
		assert.True(t, strings.HasPrefix(out, "Usage: "), "got %q", out)
		assert.Contains(t, out, "<PDP.xlsx> <Prevision_EMEA.xlsx>")
	}
}

func TestRunUpdatesWorkbook(t *testing.T) {
	planning, forecast := writeWorkbooks(t)

	out, err := execute(t, planning, forecast)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := excelize.OpenFile(planning)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("B-CAB", "C82")
	require.NoError(t, err)
	assert.Equal(t, "15", v)
}

func TestRunReportDryRun(t *testing.T) {
	planning, forecast := writeWorkbooks(t)
	before, err := os.ReadFile(planning)
	require.NoError(t, err)

	out, err := execute(t, "--dry-run", "--report", planning, forecast)
	require.NoError(t, err)

	var report struct {
		RowsRead int  `json:"rows_read"`
		RowsKept int  `json:"rows_kept"`
		DryRun   bool `json:"dry_run"`
		Writes   []struct {
			Date  string  `json:"date"`
			Cell  string  `json:"cell"`
			Value float64 `json:"value"`
		} `json:"writes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.RowsRead)
	assert.Equal(t, 2, report.RowsKept)
	assert.True(t, report.DryRun)
	require.Len(t, report.Writes, 1)
	assert.Equal(t, "2024-01-05", report.Writes[0].Date)
	assert.Equal(t, "C82", report.Writes[0].Cell)
	assert.Equal(t, 15.0, report.Writes[0].Value)

	after, err := os.ReadFile(planning)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunStructuralError(t *testing.T) {
	planning, forecast := writeWorkbooks(t)
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("planning:\n  base_label: \"B-CAB L E 1C\"\n"), 0644))

	_, err := execute(t, "--config", cfg, planning, forecast)
	require.Error(t, err)
	assert.ErrorIs(t, err, pdp.ErrBaseLabelNotFound)
	assert.False(t, errors.Is(err, errUsage))
}

func TestRunInvalidConfig(t *testing.T) {
	planning, forecast := writeWorkbooks(t)
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("forecast:\n  rate_min: 2\n"), 0644))

	_, err := execute(t, "-c", cfg, planning, forecast)
	assert.ErrorContains(t, err, "invalid config")
}
