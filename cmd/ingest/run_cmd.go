package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/workload-backend/internal/app"
	"github.com/yungbote/workload-backend/internal/ingestion/workload"
)

type runOutput struct {
	Command    string            `json:"command"`
	Sheet      string            `json:"sheet"`
	DurationMS int64             `json:"duration_ms"`
	Result     *workload.Summary `json:"result"`
}

func newRunCmd() *cobra.Command {
	var (
		sheetPath   string
		sheetName   string
		columnsFile string
		year        string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rebuild the workload tables from a load sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			opts := ingestOptions(cfg, sheetPath, sheetName, columnsFile, dryRun)
			if year != "" {
				cfg.AcademicYear = year
			}

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			start := time.Now()
			summary, err := a.Services.Ingest.Ingest(cmd.Context(), opts)
			if err != nil {
				a.Log.Error("Ingest failed", "sheet", opts.SheetPath, "error", err)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), runOutput{
				Command:    "ingest run",
				Sheet:      opts.SheetPath,
				DurationMS: time.Since(start).Milliseconds(),
				Result:     summary,
			})
		},
	}

	cmd.Flags().StringVar(&sheetPath, "sheet", "", "Workbook path (default SHEET_PATH)")
	cmd.Flags().StringVar(&sheetName, "sheet-name", "", "Sheet to read (default SHEET_NAME, else the first sheet)")
	cmd.Flags().StringVar(&columnsFile, "columns", "", "YAML header override (default SHEET_COLUMNS_FILE)")
	cmd.Flags().StringVar(&year, "year", "", "Academic year stamped on lessons (default ACADEMIC_YEAR)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run every pass, then roll back")
	return cmd
}

// ingestOptions lets flags win over the environment.
func ingestOptions(cfg app.Config, sheetPath, sheetName, columnsFile string, dryRun bool) app.IngestOptions {
	opts := app.IngestOptions{
		SheetPath:   cfg.Sheet.Path,
		SheetName:   cfg.Sheet.Name,
		ColumnsFile: cfg.Sheet.ColumnsFile,
		DryRun:      dryRun,
	}
	if sheetPath != "" {
		opts.SheetPath = sheetPath
	}
	if sheetName != "" {
		opts.SheetName = sheetName
	}
	if columnsFile != "" {
		opts.ColumnsFile = columnsFile
	}
	return opts
}
