package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type Reader struct {
	log *logger.Logger
}

func NewReader(baseLog *logger.Logger) *Reader {
	return &Reader{log: baseLog.With("component", "SheetReader")}
}

// Read loads the workbook at path and parses the named sheet, or the first
// sheet when sheetName is empty. The first non-empty line is the header. The
// name of the sheet actually read is returned alongside the rows.
func (r *Reader) Read(ctx context.Context, path, sheetName string, cols Columns) ([]Row, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", aggregates.Validation("sheet.read", "workbook %s has no sheets", path)
		}
		sheetName = sheets[0]
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheetName, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	start := 0
	for start < len(raw) && isBlank(raw[start]) {
		start++
	}
	if start == len(raw) {
		return []Row{}, sheetName, nil
	}
	rows, err := parseRows(raw[start], raw[start+1:], cols, start+2)
	if err != nil {
		return nil, sheetName, err
	}
	r.log.Debug("Sheet parsed", "path", path, "sheet", sheetName, "rows", len(rows))
	return rows, sheetName, nil
}
