package workload

import (
	"sort"
	"strconv"
	"strings"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
)

// Both passes read their own sorted copy of the input; the caller's slice is
// never reordered.

// normalizerView orders every row by (stream, discipline, semester) with the
// highest lecture hours first inside equal keys.
func normalizerView(rows []sheet.Row) []sheet.Row {
	out := make([]sheet.Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return rowLess(out[i], out[j]) })
	return out
}

// aggregatorView is normalizerView without zero-stream rows: those carry no
// shared lecture.
func aggregatorView(rows []sheet.Row) []sheet.Row {
	out := make([]sheet.Row, 0, len(rows))
	for _, r := range rows {
		if r.HasStream() {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return rowLess(out[i], out[j]) })
	return out
}

func rowLess(a, b sheet.Row) bool {
	if c := compareStream(a.Stream, b.Stream); c != 0 {
		return c < 0
	}
	if a.Discipline != b.Discipline {
		return a.Discipline < b.Discipline
	}
	if a.Semester != b.Semester {
		return a.Semester < b.Semester
	}
	return a.LectureHours() > b.LectureHours()
}

// compareStream orders numeric streams by value and everything else
// lexically, numeric first.
func compareStream(a, b string) int {
	ai, aErr := strconv.Atoi(strings.TrimSpace(a))
	bi, bErr := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case aErr == nil && bErr == nil:
		return ai - bi
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

type runKey struct {
	stream     string
	discipline string
	semester   int
}

func runKeyOf(r sheet.Row) runKey {
	return runKey{stream: r.Stream, discipline: r.Discipline, semester: r.Semester}
}

func lessonKeyOf(r sheet.Row) types.LessonKey {
	return types.LessonKey{Name: r.Discipline, Semester: r.Semester, Faculty: r.Faculty}
}

func megaKeyOf(lesson *types.Lesson, class types.TypeClass) types.MegaWorkloadKey {
	return types.MegaWorkloadKey{
		LessonName: lesson.Name,
		TypeClass:  class,
		Semester:   lesson.Semester,
		Faculty:    lesson.Faculty,
	}
}
