package sheet

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
)

var (
	errNegative   = errors.New("negative value")
	errFractional = errors.New("not a whole number")
	errTooLarge   = errors.New("value out of range")
)

var requiredFields = []Field{
	FieldGroup,
	FieldStudents,
	FieldDiscipline,
	FieldSemester,
	FieldFaculty,
	FieldStream,
	FieldLecture,
}

// ParseRows turns a header line and raw records into typed rows. Columns not
// named in cols are ignored, so stray columns such as an exported index
// never reach the caller.
func ParseRows(header []string, records [][]string, cols Columns) ([]Row, error) {
	return parseRows(header, records, cols, 2)
}

// parseRows numbers records from firstLine, the 1-based sheet line of records[0].
func parseRows(header []string, records [][]string, cols Columns, firstLine int) ([]Row, error) {
	index := map[Field]int{}
	byLabel := map[string]int{}
	for i, h := range header {
		label := strings.TrimSpace(h)
		if label == "" {
			continue
		}
		if _, dup := byLabel[label]; !dup {
			byLabel[label] = i
		}
	}
	var missing []string
	for f, label := range cols {
		i, ok := byLabel[strings.TrimSpace(label)]
		if !ok {
			if isRequired(f) {
				missing = append(missing, label)
			}
			continue
		}
		index[f] = i
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, aggregates.Validation("sheet.parse", "missing headers: %s", strings.Join(missing, ", "))
	}

	rows := make([]Row, 0, len(records))
	for n, rec := range records {
		line := firstLine + n
		if isBlank(rec) {
			continue
		}
		cell := func(f Field) string {
			i, ok := index[f]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		num := func(f Field) (int, error) {
			v, err := parseNumber(cell(f))
			if err != nil {
				return 0, aggregates.Validation("sheet.parse", "line %d column %q: %v", line, cols[f], err)
			}
			return v, nil
		}

		row := Row{
			Line:       line,
			Group:      cell(FieldGroup),
			Discipline: cell(FieldDiscipline),
			Faculty:    cell(FieldFaculty),
			Stream:     normalizeStream(cell(FieldStream)),
			Hours:      make(map[Field]int, len(HourFields)),
		}
		var err error
		if row.Students, err = num(FieldStudents); err != nil {
			return nil, err
		}
		if row.Semester, err = num(FieldSemester); err != nil {
			return nil, err
		}
		for _, f := range HourFields {
			v, err := num(f)
			if err != nil {
				return nil, err
			}
			if v != 0 {
				row.Hours[f] = v
			}
		}
		if row.Group == "" || row.Discipline == "" {
			return nil, aggregates.Validation("sheet.parse", "line %d: group and discipline are required", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isRequired(f Field) bool {
	for _, r := range requiredFields {
		if r == f {
			return true
		}
	}
	return false
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseNumber reads whole non-negative cell values written as "36", "36.0"
// or "36,0". Empty cells are 0.
func parseNumber(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	switch {
	case f < 0:
		return 0, errNegative
	case f != math.Trunc(f):
		return 0, errFractional
	case f > math.MaxInt32:
		return 0, errTooLarge
	}
	return int(f), nil
}
