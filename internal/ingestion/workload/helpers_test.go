package workload

import (
	"context"
	"testing"

	"gorm.io/gorm"

	dataagg "github.com/yungbote/workload-backend/internal/data/aggregates"
	aggtestutil "github.com/yungbote/workload-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/workload-backend/internal/data/db"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/data/repos/testutil"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
)

type gormResetter struct{ db *gorm.DB }

func (r gormResetter) ResetSchema(dbc dbctx.Context) error {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return db.ResetSchema(tx.WithContext(dbc.Ctx))
}

type fixture struct {
	db    *gorm.DB
	set   repos.Set
	hooks *aggtestutil.HooksRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testutil.DB(t)
	return &fixture{
		db:    gdb,
		set:   repos.NewSet(gdb, testutil.Logger(t)),
		hooks: &aggtestutil.HooksRecorder{},
	}
}

func (f *fixture) pipeline(t *testing.T, runner dataagg.TxRunner) *Pipeline {
	t.Helper()
	if runner == nil {
		runner = dataagg.NewGormTxRunner(f.db)
	}
	return NewPipeline(Deps{
		Log:          testutil.Logger(t),
		Schema:       gormResetter{db: f.db},
		Runner:       runner,
		Repos:        f.set,
		Hooks:        f.hooks,
		AcademicYear: "2024/2025",
	})
}

// tx opens a rolled-back-on-cleanup transaction for direct pass tests.
func (f *fixture) tx(t *testing.T) dbctx.Context {
	t.Helper()
	return dbctx.Context{Ctx: context.Background(), Tx: testutil.Tx(t, f.db)}
}

func row(line int, stream, group string, students int, discipline string, semester int, faculty string, hours map[sheet.Field]int) sheet.Row {
	if hours == nil {
		hours = map[sheet.Field]int{}
	}
	return sheet.Row{
		Line:       line,
		Group:      group,
		Students:   students,
		Discipline: discipline,
		Semester:   semester,
		Faculty:    faculty,
		Stream:     stream,
		Hours:      hours,
	}
}

func loadWorkloads(t *testing.T, tx *gorm.DB) []*types.Workload {
	t.Helper()
	var out []*types.Workload
	if err := tx.
		Preload("Lesson").
		Preload("MegaWorkload").
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Order("type ASC, created_at ASC").
		Find(&out).Error; err != nil {
		t.Fatalf("load workloads: %v", err)
	}
	return out
}

func countRows(t *testing.T, tx *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func groupNames(groups []*types.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Name)
	}
	return out
}
