package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/util"
)

func TestInitDatabaseSeedsFullGrid(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.catalog.InitDatabase()
	require.NoError(t, err)

	// 7 notes x 3 accidentals x 4 types x 3 octaves
	assert.Equal(t, int64(252), result.Scales)
	assert.Equal(t, int64(252), result.Arpeggios)

	var enabledCount int64
	require.NoError(t, env.db.Model(&model.Scale{}).Where("enabled = ?", true).Count(&enabledCount).Error)
	assert.Equal(t, int64(0), enabledCount)
}

func TestInitDatabaseIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.InitDatabase()
	require.NoError(t, err)

	again, err := env.catalog.InitDatabase()
	require.NoError(t, err)
	assert.Equal(t, "Database already initialized", again.Message)
	assert.Equal(t, int64(252), again.Scales)

	var total int64
	require.NoError(t, env.db.Model(&model.Scale{}).Count(&total).Error)
	assert.Equal(t, int64(252), total)
}

func TestUpdateScaleFields(t *testing.T) {
	env := newTestEnv(t)
	scale := seedScale(t, env.db, "A", "major", 2, false)

	enabled := true
	weight := 2.5
	bpm := 88
	updated, err := env.catalog.UpdateScale(scale.ID, CatalogItemUpdate{
		Enabled:   &enabled,
		Weight:    &weight,
		TargetBPM: &bpm,
	})
	require.NoError(t, err)

	assert.True(t, updated.Enabled)
	assert.Equal(t, 2.5, updated.Weight)
	require.NotNil(t, updated.TargetBPM)
	assert.Equal(t, 88, *updated.TargetBPM)
}

func TestUpdateScaleClearsTargetBPMWithZero(t *testing.T) {
	env := newTestEnv(t)
	scale := seedScale(t, env.db, "A", "major", 2, false)

	bpm := 88
	_, err := env.catalog.UpdateScale(scale.ID, CatalogItemUpdate{TargetBPM: &bpm})
	require.NoError(t, err)

	zero := 0
	updated, err := env.catalog.UpdateScale(scale.ID, CatalogItemUpdate{TargetBPM: &zero})
	require.NoError(t, err)
	assert.Nil(t, updated.TargetBPM)
}

func TestUpdateScaleRejectsInvalidArticulationMode(t *testing.T) {
	env := newTestEnv(t)
	scale := seedScale(t, env.db, "A", "major", 2, false)

	mode := "legato"
	_, err := env.catalog.UpdateScale(scale.ID, CatalogItemUpdate{ArticulationMode: &mode})
	assert.ErrorIs(t, err, util.ErrInvalidArticulationMode)
}

func TestUpdateScaleNotFound(t *testing.T) {
	env := newTestEnv(t)

	enabled := true
	_, err := env.catalog.UpdateScale(12345, CatalogItemUpdate{Enabled: &enabled})
	assert.ErrorIs(t, err, util.ErrScaleNotFound)
}

func TestBulkEnableScales(t *testing.T) {
	env := newTestEnv(t)

	s1 := seedScale(t, env.db, "A", "major", 1, false)
	s2 := seedScale(t, env.db, "B", "major", 1, false)
	seedScale(t, env.db, "C", "major", 1, false)

	updated, err := env.catalog.BulkEnableScales([]uint{s1.ID, s2.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var enabledCount int64
	require.NoError(t, env.db.Model(&model.Scale{}).Where("enabled = ?", true).Count(&enabledCount).Error)
	assert.Equal(t, int64(2), enabledCount)
}

func TestBulkArticulationValidatesMode(t *testing.T) {
	env := newTestEnv(t)
	scale := seedScale(t, env.db, "A", "major", 1, false)

	_, err := env.catalog.BulkArticulationScales([]uint{scale.ID}, "banana")
	assert.ErrorIs(t, err, util.ErrInvalidArticulationMode)

	updated, err := env.catalog.BulkArticulationScales([]uint{scale.ID}, model.ArticulationSlurredOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestListScalesFilters(t *testing.T) {
	env := newTestEnv(t)

	seedScale(t, env.db, "A", "major", 1, true)
	seedScale(t, env.db, "A", "minor_harmonic", 2, false)
	seedScale(t, env.db, "B", "major", 1, true)

	enabled := true
	scales, err := env.catalog.ListScales(repository.CatalogFilter{Note: "A", Enabled: &enabled})
	require.NoError(t, err)
	require.Len(t, scales, 1)
	assert.Equal(t, "A", scales[0].Note)
	assert.Equal(t, "major", scales[0].Type)
}
