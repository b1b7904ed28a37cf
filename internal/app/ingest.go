package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/ingestion/workload"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

// SheetReader loads typed rows from a workbook.
type SheetReader interface {
	Read(ctx context.Context, path, sheetName string, cols sheet.Columns) ([]sheet.Row, string, error)
}

// IngestPipeline reconciles rows into the store.
type IngestPipeline interface {
	Run(ctx context.Context, in workload.Input) (*workload.Summary, error)
}

type IngestOptions struct {
	SheetPath   string
	SheetName   string
	ColumnsFile string
	DryRun      bool
}

// IngestService reads a workbook and hands its rows to the pipeline.
type IngestService struct {
	log      *logger.Logger
	reader   SheetReader
	pipeline IngestPipeline
}

func NewIngestService(baseLog *logger.Logger, reader SheetReader, pipeline IngestPipeline) *IngestService {
	return &IngestService{log: baseLog.With("service", "IngestService"), reader: reader, pipeline: pipeline}
}

func (s *IngestService) Ingest(ctx context.Context, opts IngestOptions) (*workload.Summary, error) {
	path := strings.TrimSpace(opts.SheetPath)
	if path == "" {
		return nil, fmt.Errorf("sheet path is required")
	}
	cols := sheet.DefaultColumns()
	if f := strings.TrimSpace(opts.ColumnsFile); f != "" {
		loaded, err := sheet.LoadColumns(f)
		if err != nil {
			return nil, fmt.Errorf("load columns: %w", err)
		}
		cols = loaded
	}

	rows, sheetName, err := s.reader.Read(ctx, path, opts.SheetName, cols)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	s.log.Info("Sheet loaded", "path", path, "sheet", sheetName, "rows", len(rows), "dry_run", opts.DryRun)

	summary, err := s.pipeline.Run(ctx, workload.Input{
		Rows:       rows,
		SourcePath: path,
		SheetName:  sheetName,
		DryRun:     opts.DryRun,
	})
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	return summary, nil
}
