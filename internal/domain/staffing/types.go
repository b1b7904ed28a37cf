package staffing

// Workload type labels as stored in Workload.Type.
const (
	TypeLecture       = "Lecture"
	TypePractical     = "Practical"
	TypeLab           = "Lab"
	TypeCourseWork    = "Course Work"
	TypeCourseProject = "Course Project"
	TypeConsultation  = "Consultation"
	TypeRating        = "Rating"
	TypePassFail      = "Pass/Fail"
	TypeExam          = "Exam"
)

// TypeClass is the three-way bucket a workload type falls into.
type TypeClass string

const (
	TypeClassIndividual TypeClass = "Individual"
	TypeClassPractical  TypeClass = "Practical class"
	TypeClassLab        TypeClass = "Lab class"
)

func (c TypeClass) Valid() bool {
	switch c {
	case TypeClassIndividual, TypeClassPractical, TypeClassLab:
		return true
	default:
		return false
	}
}

// ClassifyWorkloadType maps a workload type label to its type class.
// Every label other than Practical and Lab, Lecture included, is Individual.
func ClassifyWorkloadType(label string) TypeClass {
	switch label {
	case TypePractical:
		return TypeClassPractical
	case TypeLab:
		return TypeClassLab
	default:
		return TypeClassIndividual
	}
}

// AllModels lists the schema in creation order.
func AllModels() []interface{} {
	return []interface{}{
		&Group{},
		&Lesson{},
		&Employee{},
		&MegaWorkload{},
		&Workload{},
		&IngestRun{},
	}
}
