package staffing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson is one discipline offering. Its natural key is LessonKey; Stream
// records the first stream the lesson was seen in and is not part of the key.
type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Stream   string    `gorm:"column:stream;not null" json:"stream"`
	Name     string    `gorm:"column:name;not null;index:idx_lesson_key" json:"name"`
	Year     string    `gorm:"column:year;not null" json:"year"`
	Semester int       `gorm:"column:semester;not null;index:idx_lesson_key" json:"semester"`
	Faculty  string    `gorm:"column:faculty;not null;index:idx_lesson_key" json:"faculty"`

	Workloads []*Workload `gorm:"foreignKey:LessonID" json:"workloads,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Lesson) TableName() string { return "lessons" }

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *Lesson) Key() LessonKey {
	return LessonKey{Name: l.Name, Semester: l.Semester, Faculty: l.Faculty}
}

type LessonKey struct {
	Name     string
	Semester int
	Faculty  string
}
