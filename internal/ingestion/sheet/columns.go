package sheet

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
)

// Field names a logical column of the workload sheet.
type Field string

const (
	FieldGroup         Field = "group"
	FieldStudents      Field = "students"
	FieldDiscipline    Field = "discipline"
	FieldSemester      Field = "semester"
	FieldFaculty       Field = "faculty"
	FieldStream        Field = "stream"
	FieldLecture       Field = "lecture"
	FieldPractical     Field = "practical"
	FieldLab           Field = "lab"
	FieldCourseWork    Field = "course_work"
	FieldCourseProject Field = "course_project"
	FieldConsultation  Field = "consultation"
	FieldRating        Field = "rating"
	FieldPassFail      Field = "pass_fail"
	FieldExam          Field = "exam"
)

// HourFields are the numeric workload-hour columns.
var HourFields = []Field{
	FieldLecture,
	FieldPractical,
	FieldLab,
	FieldCourseWork,
	FieldCourseProject,
	FieldConsultation,
	FieldRating,
	FieldPassFail,
	FieldExam,
}

// Columns maps each field to its header label in the sheet.
type Columns map[Field]string

func DefaultColumns() Columns {
	return Columns{
		FieldGroup:         "Название",
		FieldStudents:      "Студентов",
		FieldDiscipline:    "Название предмета",
		FieldSemester:      "Семестр",
		FieldFaculty:       "Факультет",
		FieldStream:        "Поток",
		FieldLecture:       "Лекции нагрузка",
		FieldPractical:     "Практические занятия нагрузка",
		FieldLab:           "Лабораторные работы нагрузка",
		FieldCourseWork:    "Курсовая работа",
		FieldCourseProject: "Курсовой проект",
		FieldConsultation:  "Конс",
		FieldRating:        "Рейтинг",
		FieldPassFail:      "Зачёт",
		FieldExam:          "Экзамен",
	}
}

// LoadColumns reads a YAML field->header override and merges it over the
// defaults. An empty path returns the defaults.
func LoadColumns(path string) (Columns, error) {
	cols := DefaultColumns()
	if strings.TrimSpace(path) == "" {
		return cols, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read columns file: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, aggregates.Validation("sheet.columns", "parse %s: %v", path, err)
	}
	var unknown []string
	for k, v := range overrides {
		f := Field(strings.TrimSpace(k))
		if _, ok := cols[f]; !ok {
			unknown = append(unknown, k)
			continue
		}
		if strings.TrimSpace(v) == "" {
			return nil, aggregates.Validation("sheet.columns", "empty header for field %q", k)
		}
		cols[f] = strings.TrimSpace(v)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, aggregates.Validation("sheet.columns", "unknown fields: %s", strings.Join(unknown, ", "))
	}
	return cols, nil
}
