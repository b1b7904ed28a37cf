package sheet

import (
	"strconv"
	"strings"
)

// Row is one typed line of the workload sheet: one group taking one discipline.
type Row struct {
	Line       int
	Group      string
	Students   int
	Discipline string
	Semester   int
	Faculty    string
	Stream     string
	Hours      map[Field]int
}

// HoursFor returns the hours of a workload column, 0 when absent.
func (r Row) HoursFor(f Field) int {
	return r.Hours[f]
}

func (r Row) LectureHours() int { return r.Hours[FieldLecture] }

// HasStream reports whether the row belongs to a lecture stream. "0" and ""
// mark rows without one.
func (r Row) HasStream() bool {
	return !IsZeroStream(r.Stream)
}

func IsZeroStream(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "0"
}

// normalizeStream renders integral numeric streams without a fraction so
// "1" and "1.0" compare equal.
func normalizeStream(raw string) string {
	raw = strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return raw
}
