package staffing

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/workload-backend/internal/data/repos/testutil"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
)

func TestLessonRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewLessonRepo(db, testutil.Logger(t))

	algebra := &types.Lesson{Stream: "1", Name: "Algebra", Year: "2024/2025", Semester: 3, Faculty: "CS"}
	physics := &types.Lesson{Stream: "2", Name: "Physics", Year: "2024/2025", Semester: 4, Faculty: "PH"}
	if _, err := repo.Create(dbc, []*types.Lesson{algebra, physics}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByKey(dbc, types.LessonKey{Name: "Algebra", Semester: 3, Faculty: "CS"})
	if err != nil || got == nil || got.ID != algebra.ID {
		t.Fatalf("GetByKey: got=%v err=%v", got, err)
	}
	// The stream is not part of the key.
	if got.Key() != (types.LessonKey{Name: "Algebra", Semester: 3, Faculty: "CS"}) {
		t.Fatalf("unexpected key: %+v", got.Key())
	}
	if miss, err := repo.GetByKey(dbc, types.LessonKey{Name: "Algebra", Semester: 4, Faculty: "CS"}); err != nil || miss != nil {
		t.Fatalf("GetByKey wrong semester: got=%v err=%v", miss, err)
	}

	if rows, err := repo.GetByIDs(dbc, []uuid.UUID{physics.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByIDs(dbc, nil); err != nil || len(rows) != 0 {
		t.Fatalf("GetByIDs(nil): err=%v len=%d", err, len(rows))
	}

	if rows, err := repo.List(dbc, LessonFilter{}); err != nil || len(rows) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	rows, err := repo.List(dbc, LessonFilter{Semester: testutil.PtrInt(4), Faculty: "PH"})
	if err != nil || len(rows) != 1 || rows[0].Name != "Physics" {
		t.Fatalf("List filtered: err=%v rows=%v", err, rows)
	}
}
