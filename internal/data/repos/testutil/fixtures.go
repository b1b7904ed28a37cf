package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
)

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, students int) *types.Group {
	tb.Helper()
	g := &types.Group{Name: name, StudentsCount: students}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, semester int, faculty string) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		Stream:   "1",
		Name:     name,
		Year:     "2024/2025",
		Semester: semester,
		Faculty:  faculty,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedMegaWorkload(tb testing.TB, ctx context.Context, tx *gorm.DB, lesson *types.Lesson, class types.TypeClass) *types.MegaWorkload {
	tb.Helper()
	m := &types.MegaWorkload{
		LessonName: lesson.Name,
		TypeClass:  class,
		Semester:   lesson.Semester,
		Faculty:    lesson.Faculty,
	}
	if err := tx.WithContext(ctx).Omit("Workloads").Create(m).Error; err != nil {
		tb.Fatalf("seed mega workload: %v", err)
	}
	return m
}

func SeedWorkload(tb testing.TB, ctx context.Context, tx *gorm.DB, lesson *types.Lesson, typ string, hours int, groups ...*types.Group) *types.Workload {
	tb.Helper()
	w := &types.Workload{
		Type:     typ,
		Hours:    hours,
		LessonID: lesson.ID,
		Groups:   groups,
	}
	if err := tx.WithContext(ctx).Omit("Groups.*").Create(w).Error; err != nil {
		tb.Fatalf("seed workload: %v", err)
	}
	return w
}

func PtrInt(v int) *int { return &v }
