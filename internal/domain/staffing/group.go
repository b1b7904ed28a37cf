package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is a study group. Name is unique within one ingestion run.
type Group struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null;index" json:"name"`
	StudentsCount int       `gorm:"column:students_count;not null" json:"students_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Group) TableName() string { return "groups" }

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
