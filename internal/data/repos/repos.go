package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/workload-backend/internal/data/repos/staffing"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type GroupRepo = staffing.GroupRepo
type LessonRepo = staffing.LessonRepo
type WorkloadRepo = staffing.WorkloadRepo
type MegaWorkloadRepo = staffing.MegaWorkloadRepo
type EmployeeRepo = staffing.EmployeeRepo
type IngestRunRepo = staffing.IngestRunRepo

type LessonFilter = staffing.LessonFilter
type MegaWorkloadFilter = staffing.MegaWorkloadFilter

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return staffing.NewGroupRepo(db, baseLog)
}
func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return staffing.NewLessonRepo(db, baseLog)
}
func NewWorkloadRepo(db *gorm.DB, baseLog *logger.Logger) WorkloadRepo {
	return staffing.NewWorkloadRepo(db, baseLog)
}
func NewMegaWorkloadRepo(db *gorm.DB, baseLog *logger.Logger) MegaWorkloadRepo {
	return staffing.NewMegaWorkloadRepo(db, baseLog)
}
func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return staffing.NewEmployeeRepo(db, baseLog)
}
func NewIngestRunRepo(db *gorm.DB, baseLog *logger.Logger) IngestRunRepo {
	return staffing.NewIngestRunRepo(db, baseLog)
}

// Set bundles every staffing repo over one handle.
type Set struct {
	Group        GroupRepo
	Lesson       LessonRepo
	Workload     WorkloadRepo
	MegaWorkload MegaWorkloadRepo
	Employee     EmployeeRepo
	IngestRun    IngestRunRepo
}

func NewSet(db *gorm.DB, baseLog *logger.Logger) Set {
	return Set{
		Group:        NewGroupRepo(db, baseLog),
		Lesson:       NewLessonRepo(db, baseLog),
		Workload:     NewWorkloadRepo(db, baseLog),
		MegaWorkload: NewMegaWorkloadRepo(db, baseLog),
		Employee:     NewEmployeeRepo(db, baseLog),
		IngestRun:    NewIngestRunRepo(db, baseLog),
	}
}
