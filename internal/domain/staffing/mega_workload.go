package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MegaWorkload aggregates every workload of one type class for one lesson
// offering. It is the unit later assigned to an employee.
type MegaWorkload struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LessonName   string    `gorm:"column:lesson_name;not null;index:idx_mega_workload_key" json:"lesson_name"`
	TypeClass    TypeClass `gorm:"column:type_class;not null;index:idx_mega_workload_key" json:"type_class"`
	Semester     int       `gorm:"column:semester;not null;index:idx_mega_workload_key" json:"semester"`
	Faculty      string    `gorm:"column:faculty;not null;index:idx_mega_workload_key" json:"faculty"`
	EmployeeName *string   `gorm:"column:employee_name" json:"employee_name,omitempty"`

	Workloads []*Workload `gorm:"foreignKey:MegaWorkloadID" json:"workloads,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MegaWorkload) TableName() string { return "mega_workloads" }

func (m *MegaWorkload) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MegaWorkload) Key() MegaWorkloadKey {
	return MegaWorkloadKey{LessonName: m.LessonName, TypeClass: m.TypeClass, Semester: m.Semester, Faculty: m.Faculty}
}

// TotalHours sums the hours of the loaded workloads.
func (m *MegaWorkload) TotalHours() int {
	total := 0
	for _, w := range m.Workloads {
		if w != nil {
			total += w.Hours
		}
	}
	return total
}

type MegaWorkloadKey struct {
	LessonName string
	TypeClass  TypeClass
	Semester   int
	Faculty    string
}
