package workload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/workload-backend/internal/data/repos/testutil"
	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
)

func TestLinker_LinksEveryWorkloadByTypeClass(t *testing.T) {
	f := newFixture(t)
	dbc := f.tx(t)
	ctx := context.Background()

	g1 := testutil.SeedGroup(t, ctx, dbc.Tx, "G1", 20)
	lesson := testutil.SeedLesson(t, ctx, dbc.Tx, "Algebra", 3, "CS")
	individual := testutil.SeedMegaWorkload(t, ctx, dbc.Tx, lesson, types.TypeClassIndividual)
	practical := testutil.SeedMegaWorkload(t, ctx, dbc.Tx, lesson, types.TypeClassPractical)
	lab := testutil.SeedMegaWorkload(t, ctx, dbc.Tx, lesson, types.TypeClassLab)

	testutil.SeedWorkload(t, ctx, dbc.Tx, lesson, types.TypeLecture, 36, g1)
	testutil.SeedWorkload(t, ctx, dbc.Tx, lesson, types.TypePractical, 18, g1)
	testutil.SeedWorkload(t, ctx, dbc.Tx, lesson, types.TypeLab, 8, g1)
	testutil.SeedWorkload(t, ctx, dbc.Tx, lesson, types.TypeExam, 2, g1)

	linker := NewLinker(f.set, testutil.Logger(t))
	stats, err := linker.Run(dbc)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Linked)

	expected := map[string]*types.MegaWorkload{
		types.TypeLecture:   individual,
		types.TypePractical: practical,
		types.TypeLab:       lab,
		types.TypeExam:      individual,
	}
	for _, w := range loadWorkloads(t, dbc.Tx) {
		require.NotNil(t, w.MegaWorkloadID, "workload %s not linked", w.Type)
		assert.Equal(t, expected[w.Type].ID, *w.MegaWorkloadID, "workload %s", w.Type)
	}

	// Running again rewrites the same links.
	stats, err = linker.Run(dbc)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Linked)
	for _, w := range loadWorkloads(t, dbc.Tx) {
		assert.Equal(t, expected[w.Type].ID, *w.MegaWorkloadID)
	}
}

func TestLinker_MissingMegaWorkloadIsNotFound(t *testing.T) {
	f := newFixture(t)
	dbc := f.tx(t)
	ctx := context.Background()

	lesson := testutil.SeedLesson(t, ctx, dbc.Tx, "Algebra", 3, "CS")
	testutil.SeedMegaWorkload(t, ctx, dbc.Tx, lesson, types.TypeClassIndividual)
	testutil.SeedWorkload(t, ctx, dbc.Tx, lesson, types.TypeLab, 8)

	_, err := NewLinker(f.set, testutil.Logger(t)).Run(dbc)
	require.Error(t, err)
	assert.True(t, aggregates.IsCode(err, aggregates.CodeNotFound), "got %v", err)
	assert.Contains(t, err.Error(), string(types.TypeClassLab))
}
