// Package main provides the CLI entry point for updatepdp.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/updatepdp-go/internal/config"
	"github.com/ukaji3/updatepdp-go/pkg/pdp"
	"github.com/ukaji3/updatepdp-go/pkg/pdp/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errUsage is returned after the usage line has been printed.
var errUsage = errors.New("usage")

// newLogger builds the run logger. Tests replace it.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

type cliFlags struct {
	configPath string
	verbose    bool
	dryRun     bool
	report     bool
	pretty     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags  cliFlags
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "updatepdp <PDP.xlsx> <Prevision_EMEA.xlsx>",
		Short: "Update the PDP Customer Opportunities row from the EMEA forecast",
		Long: `updatepdp sums the EnerOne B-Cab forecast per delivery date for rows whose
fiability rate lies between 60% and 90%, and writes the sums into the
"Customer Opportunities" row of the B-CAB sheet of the PDP workbook.

The PDP workbook is overwritten in place.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine())
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(flags.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags, logger)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML file overriding sheet names, labels and rate bounds")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log per-row exclusions and unmatched dates")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Run every step but do not save the PDP workbook")
	cmd.Flags().BoolVar(&flags.report, "report", false, "Print a JSON run report to stdout")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print the JSON report")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags cliFlags, logger *zap.Logger) error {
	planningPath, forecastPath := args[0], args[1]

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	opts.DryRun = flags.dryRun
	opts.Logger = logger

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("updating workbook",
		zap.String("planning", planningPath),
		zap.String("forecast", forecastPath),
		zap.Bool("dry_run", opts.DryRun))

	report, err := pdp.Update(ctx, planningPath, forecastPath, opts)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	if flags.report {
		data, err := output.ToJSON(report, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	return nil
}

func usageLine() string {
	return fmt.Sprintf("Usage: %s <PDP.xlsx> <Prevision_EMEA.xlsx>", filepath.Base(os.Args[0]))
}
