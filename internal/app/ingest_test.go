package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/ingestion/workload"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

func writeLoadSheet(t *testing.T, dir string) string {
	t.Helper()
	c := sheet.DefaultColumns()
	lines := [][]interface{}{
		{c[sheet.FieldGroup], c[sheet.FieldStudents], c[sheet.FieldDiscipline], c[sheet.FieldSemester],
			c[sheet.FieldFaculty], c[sheet.FieldStream], c[sheet.FieldLecture], c[sheet.FieldPractical], c[sheet.FieldExam]},
		{"G1", 20, "Algebra", 3, "CS", 1, 36, 18, 0},
		{"G2", 15, "Algebra", 3, "CS", 1, 36, 0, 0},
		{"G3", 12, "Thesis", 8, "CS", 0, 0, 0, 4},
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &lines[i]))
	}
	path := filepath.Join(dir, "itog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newSQLiteApp(t *testing.T, redisAddr ...string) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		LogMode:      "test",
		AcademicYear: "2024/2025",
		Database:     DatabaseOptions{Driver: "sqlite", SQLitePath: filepath.Join(dir, "workload.db")},
	}
	if len(redisAddr) > 0 {
		cfg.Redis = RedisOptions{Addr: redisAddr[0], LockTTL: time.Minute}
	}
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, dir
}

func TestApp_IngestWorkbook(t *testing.T) {
	a, dir := newSQLiteApp(t)
	path := writeLoadSheet(t, dir)
	ctx := context.Background()

	summary, err := a.Services.Ingest.Ingest(ctx, IngestOptions{SheetPath: path})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Normalize.Rows)
	assert.Equal(t, 1, summary.Aggregate.LectureWorkloads)

	var workloads []*types.Workload
	require.NoError(t, a.Store.DB().Preload("Groups").Find(&workloads).Error)
	// Lecture for the stream, Practical for G1, Exam for the zero-stream row.
	assert.Len(t, workloads, 3)
	for _, w := range workloads {
		assert.NotNil(t, w.MegaWorkloadID, "%s not linked", w.Type)
	}

	run, err := a.Services.Staffing.LatestIngestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", run.SheetName)
	assert.Equal(t, 3, run.RowCount)

	// A dry run leaves the committed rows untouched.
	_, err = a.Services.Ingest.Ingest(ctx, IngestOptions{SheetPath: path, DryRun: true})
	require.NoError(t, err)
	var count int64
	require.NoError(t, a.Store.DB().Model(&types.Workload{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestApp_IngestUnderRedisLock(t *testing.T) {
	mr := miniredis.RunT(t)
	a, dir := newSQLiteApp(t, mr.Addr())
	path := writeLoadSheet(t, dir)
	ctx := context.Background()

	_, err := a.Services.Ingest.Ingest(ctx, IngestOptions{SheetPath: path})
	require.NoError(t, err)
	assert.False(t, mr.Exists(workload.LockKey), "lock not released")

	// Another process holding the lock blocks the run.
	require.NoError(t, mr.Set(workload.LockKey, "other"))
	_, err = a.Services.Ingest.Ingest(ctx, IngestOptions{SheetPath: path})
	require.Error(t, err)
	assert.True(t, aggregates.IsCode(err, aggregates.CodeConflict), "got %v", err)
}

func TestNew_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg := Config{
		LogMode:      "test",
		AcademicYear: "2024/2025",
		Database:     DatabaseOptions{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "workload.db")},
		Redis:        RedisOptions{Addr: addr},
	}
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

type fakeReader struct {
	rows []sheet.Row
	cols sheet.Columns
	err  error
}

func (r *fakeReader) Read(_ context.Context, _, sheetName string, cols sheet.Columns) ([]sheet.Row, string, error) {
	r.cols = cols
	return r.rows, sheetName, r.err
}

type fakePipeline struct {
	in  workload.Input
	err error
}

func (p *fakePipeline) Run(_ context.Context, in workload.Input) (*workload.Summary, error) {
	p.in = in
	if p.err != nil {
		return nil, p.err
	}
	return &workload.Summary{DryRun: in.DryRun}, nil
}

func TestIngestService_PassesInputThrough(t *testing.T) {
	reader := &fakeReader{rows: []sheet.Row{{Line: 2, Group: "G1"}}}
	pipeline := &fakePipeline{}
	svc := NewIngestService(logger.Nop(), reader, pipeline)

	summary, err := svc.Ingest(context.Background(), IngestOptions{SheetPath: "a.xlsx", SheetName: "Load", DryRun: true})
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, "a.xlsx", pipeline.in.SourcePath)
	assert.Equal(t, "Load", pipeline.in.SheetName)
	assert.Len(t, pipeline.in.Rows, 1)
	assert.Equal(t, sheet.DefaultColumns(), reader.cols)
}

func TestIngestService_ColumnsOverride(t *testing.T) {
	dir := t.TempDir()
	colsPath := filepath.Join(dir, "columns.yaml")
	require.NoError(t, os.WriteFile(colsPath, []byte("group: Group\n"), 0o600))

	reader := &fakeReader{}
	svc := NewIngestService(logger.Nop(), reader, &fakePipeline{})
	_, err := svc.Ingest(context.Background(), IngestOptions{SheetPath: "a.xlsx", ColumnsFile: colsPath})
	require.NoError(t, err)
	assert.Equal(t, "Group", reader.cols[sheet.FieldGroup])
}

func TestIngestService_Errors(t *testing.T) {
	svc := NewIngestService(logger.Nop(), &fakeReader{}, &fakePipeline{})
	_, err := svc.Ingest(context.Background(), IngestOptions{})
	require.Error(t, err)

	readErr := errors.New("corrupt workbook")
	svc = NewIngestService(logger.Nop(), &fakeReader{err: readErr}, &fakePipeline{})
	_, err = svc.Ingest(context.Background(), IngestOptions{SheetPath: "a.xlsx"})
	require.ErrorIs(t, err, readErr)

	runErr := errors.New("not found")
	svc = NewIngestService(logger.Nop(), &fakeReader{}, &fakePipeline{err: runErr})
	_, err = svc.Ingest(context.Background(), IngestOptions{SheetPath: "a.xlsx"})
	require.ErrorIs(t, err, runErr)
	assert.Contains(t, err.Error(), "a.xlsx")
}
