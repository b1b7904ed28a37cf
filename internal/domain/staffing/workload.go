package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workload is one slice of teaching hours of a single type for a lesson,
// shared by one or more groups.
type Workload struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type  string    `gorm:"column:type;not null;index" json:"type"`
	Hours int       `gorm:"column:hours;not null" json:"hours"`

	LessonID uuid.UUID `gorm:"type:uuid;column:lesson_id;not null;index" json:"lesson_id"`
	Lesson   *Lesson   `gorm:"foreignKey:LessonID;references:ID" json:"lesson,omitempty"`

	EmployeeID *uuid.UUID `gorm:"type:uuid;column:employee_id;index" json:"employee_id,omitempty"`
	Employee   *Employee  `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	MegaWorkloadID *uuid.UUID    `gorm:"type:uuid;column:mega_workload_id;index" json:"mega_workload_id,omitempty"`
	MegaWorkload   *MegaWorkload `gorm:"foreignKey:MegaWorkloadID;references:ID" json:"mega_workload,omitempty"`

	Groups []*Group `gorm:"many2many:group_workload;" json:"groups,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Workload) TableName() string { return "workloads" }

func (w *Workload) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
