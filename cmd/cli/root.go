package main

import (
	"context"
	"fmt"
	"os"

	"datareport/adapters/excel"
	"datareport/domain/table"
	"datareport/internal"
	"datareport/internal/analysis/distributions"
	"datareport/internal/config"
	apperrors "datareport/internal/errors"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app holds what every command needs once the root pre-run has finished.
type app struct {
	cfg *config.Config
	log *internal.Logger

	file      string
	sheet     string
	noHeaders bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: internal.DefaultLogger.With("cli")}

	root := &cobra.Command{
		Use:   "datareport",
		Short: "Clean tabular data and run descriptive statistics, intervals and hypothesis tests",
		Long: `datareport reads a CSV or XLSX file and runs the statistical core over it.

Configuration is read from the environment (and a .env file when present):
- LOG_LEVEL (ERROR, WARN, INFO, DEBUG, TRACE; default INFO)
- REPORT_CONFIDENCE (default 0.95)
- REPORT_WORKERS (default 4)
- REPORT_DATA_FILE (input file when --file is not given)
- REPORT_SHEET (xlsx sheet; default the first sheet)
- REPORT_HAS_HEADERS (default true)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", `input .csv or .xlsx file, "-" for CSV on stdin`)
	root.PersistentFlags().StringVar(&a.sheet, "sheet", "", "xlsx sheet to read")
	root.PersistentFlags().BoolVar(&a.noHeaders, "no-headers", false, `first row is data; select columns as "col N"`)

	root.AddCommand(
		newCleanCmd(a),
		newDescribeCmd(a),
		newIntervalCmd(a),
		newTestCmd(a),
		newReportCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		a.log.Debug("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	internal.DefaultLogger.SetLevel(cfg.Log.Level)

	if err := distributions.Initialize(ctx); err != nil {
		return apperrors.Wrap(err, "statistics backend unavailable")
	}
	return nil
}

// loadTable reads the input file named by --file or REPORT_DATA_FILE.
func (a *app) loadTable(cmd *cobra.Command, hasHeaders bool) (table.Table, error) {
	path := a.file
	if path == "" {
		path = a.cfg.Data.File
	}
	if path == "" {
		return table.Table{}, apperrors.InvalidInput("no input file: pass --file or set REPORT_DATA_FILE")
	}

	var t table.Table
	var err error
	if path == "-" {
		t, err = excel.ReadCSV(cmd.InOrStdin(), hasHeaders)
	} else {
		sheet := a.sheet
		if sheet == "" {
			sheet = a.cfg.Data.Sheet
		}
		t, err = excel.NewDataReader(path, excel.Options{Sheet: sheet, HasHeaders: hasHeaders}).ReadTable()
	}
	if err != nil {
		return table.Table{}, err
	}
	a.log.Info("loaded %s: %s rows, %d columns", path, humanize.Comma(int64(t.NumDataRows())), t.Width())
	return t, nil
}

// hasHeaders is the header setting for commands without a report spec.
func (a *app) hasHeaders() bool {
	return a.cfg.Data.HasHeaders && !a.noHeaders
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeNotFound, err)
	}
	return data, nil
}
