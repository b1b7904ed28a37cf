package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is filled by the staffing step, not by ingestion.
type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	AvailableWorkload int       `gorm:"column:available_workload;not null" json:"available_workload"`
	ExtraWorkload     int       `gorm:"column:extra_workload;not null" json:"extra_workload"`

	Workloads []*Workload `gorm:"foreignKey:EmployeeID" json:"workloads,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
