package workload

import (
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
)

// Column pairs a workload type label with the sheet column holding its hours.
type Column struct {
	Type  string
	Field sheet.Field
}

// GeneralColumns are taught per group in class.
var GeneralColumns = []Column{
	{Type: types.TypePractical, Field: sheet.FieldPractical},
	{Type: types.TypeLab, Field: sheet.FieldLab},
}

var IndividualColumns = []Column{
	{Type: types.TypeCourseWork, Field: sheet.FieldCourseWork},
	{Type: types.TypeCourseProject, Field: sheet.FieldCourseProject},
	{Type: types.TypeConsultation, Field: sheet.FieldConsultation},
	{Type: types.TypeRating, Field: sheet.FieldRating},
	{Type: types.TypePassFail, Field: sheet.FieldPassFail},
	{Type: types.TypeExam, Field: sheet.FieldExam},
}

// RowColumns is the ordered list the Normalizer walks for every row.
func RowColumns() []Column {
	out := make([]Column, 0, len(GeneralColumns)+len(IndividualColumns))
	out = append(out, GeneralColumns...)
	return append(out, IndividualColumns...)
}
