package staffing

import "testing"

func TestClassifyWorkloadType(t *testing.T) {
	cases := map[string]TypeClass{
		TypePractical:     TypeClassPractical,
		TypeLab:           TypeClassLab,
		TypeLecture:       TypeClassIndividual,
		TypeCourseWork:    TypeClassIndividual,
		TypeCourseProject: TypeClassIndividual,
		TypeConsultation:  TypeClassIndividual,
		TypeRating:        TypeClassIndividual,
		TypePassFail:      TypeClassIndividual,
		TypeExam:          TypeClassIndividual,
		"":                TypeClassIndividual,
		"practical":       TypeClassIndividual,
	}
	for label, want := range cases {
		if got := ClassifyWorkloadType(label); got != want {
			t.Fatalf("ClassifyWorkloadType(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestTypeClassValid(t *testing.T) {
	if !TypeClassLab.Valid() || !TypeClassPractical.Valid() || !TypeClassIndividual.Valid() {
		t.Fatalf("known classes must be valid")
	}
	if TypeClass("Lecture").Valid() {
		t.Fatalf("Lecture is a type label, not a class")
	}
}

func TestMegaWorkloadTotalHours(t *testing.T) {
	m := &MegaWorkload{Workloads: []*Workload{{Hours: 36}, nil, {Hours: 18}}}
	if got := m.TotalHours(); got != 54 {
		t.Fatalf("TotalHours = %d, want 54", got)
	}
}
