package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IngestRun struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SourcePath string         `gorm:"column:source_path;not null" json:"source_path"`
	SheetName  string         `gorm:"column:sheet_name" json:"sheet_name"`
	RowCount   int            `gorm:"column:row_count;not null" json:"row_count"`
	Summary    datatypes.JSON `gorm:"column:summary" json:"summary"`
	StartedAt  time.Time      `gorm:"column:started_at;not null" json:"started_at"`
	FinishedAt time.Time      `gorm:"column:finished_at;not null;index" json:"finished_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (IngestRun) TableName() string { return "ingest_runs" }

func (r *IngestRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
