package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/catalog/adapter/out"
	"studytracker/internal/modules/catalog/domain"
	"studytracker/internal/modules/catalog/service"
	"studytracker/internal/modules/catalog/usecase"
	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fixedMode string

func (m fixedMode) ColorMode(context.Context) string { return string(m) }

func TestCatalogPersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	gateway := persistence.New(kv.NewMemory(), nil)
	svc := service.NewCatalogService(out.NewGatewayStore(gateway), &seqID{}, fixedMode("monochrome")).
		WithRand(func(int) int { return 0 })
	uc := usecase.NewInteractor(svc)

	math, err := uc.AddSubject(ctx, "Math")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", math.Color)
	physics, err := uc.AddSubject(ctx, "Physics")
	require.NoError(t, err)
	assert.Equal(t, "#fafafa", physics.Color, "first unused monochrome shade")

	_, err = uc.AddSubject(ctx, "PHYSICS")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	chapter, err := uc.AddChapter(ctx, math.ID)
	require.NoError(t, err)
	task, err := uc.AddTask(ctx, math.ID, chapter.ID)
	require.NoError(t, err)
	require.NoError(t, uc.ToggleTask(ctx, math.ID, chapter.ID, task.ID))

	stored := persistence.LoadJSON(ctx, gateway, persistence.KeySubjects, domain.Catalog{})
	require.Len(t, stored, 2)
	assert.True(t, stored[0].Chapters[0].Tasks[0].Completed)

	list, err := uc.ListSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list[0].TasksDone)
	assert.Equal(t, 1, list[0].TasksTotal)

	require.NoError(t, uc.DeleteSubject(ctx, physics.ID))
	assert.ErrorIs(t, uc.DeleteSubject(ctx, physics.ID), apperrors.ErrNotFound)
	list, err = uc.ListSubjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCorruptCatalogReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, persistence.KeySubjects, "{oops"))
	uc := usecase.NewInteractor(service.NewCatalogService(out.NewGatewayStore(persistence.New(store, nil)), &seqID{}, nil))

	list, err := uc.ListSubjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
