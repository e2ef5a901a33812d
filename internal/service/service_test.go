package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

var testDBSeq int64

// newTestDB opens a private in-memory database per test so state
// never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Scale{},
		&model.Arpeggio{},
		&model.PracticeSession{},
		&model.PracticeEntry{},
		&model.Setting{},
		&model.SelectionSet{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	catalog  *CatalogService
	practice *PracticeService
	settings *SettingsService
	sets     *SelectionSetService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	scaleRepo := repository.NewScaleRepository(db)
	arpeggioRepo := repository.NewArpeggioRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	setRepo := repository.NewSelectionSetRepository(db)

	return &testEnv{
		db:       db,
		catalog:  NewCatalogService(scaleRepo, arpeggioRepo),
		practice: NewPracticeService(scaleRepo, arpeggioRepo, practiceRepo, settingRepo),
		settings: NewSettingsService(settingRepo),
		sets:     NewSelectionSetService(setRepo, scaleRepo, arpeggioRepo),
	}
}

func seedScale(t *testing.T, db *gorm.DB, note, scaleType string, octaves int, enabled bool) *model.Scale {
	t.Helper()

	scale := &model.Scale{
		Note:             note,
		Type:             scaleType,
		Octaves:          octaves,
		Enabled:          enabled,
		Weight:           1.0,
		ArticulationMode: model.ArticulationBoth,
	}
	require.NoError(t, db.Create(scale).Error)
	return scale
}

func seedArpeggio(t *testing.T, db *gorm.DB, note, arpeggioType string, octaves int, enabled bool) *model.Arpeggio {
	t.Helper()

	arpeggio := &model.Arpeggio{
		Note:             note,
		Type:             arpeggioType,
		Octaves:          octaves,
		Enabled:          enabled,
		Weight:           1.0,
		ArticulationMode: model.ArticulationBoth,
	}
	require.NoError(t, db.Create(arpeggio).Error)
	return arpeggio
}
