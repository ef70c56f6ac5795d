// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smart_vocab/internal/config"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します。
// :memory: を直接使うとコネクションごとに別DBになるため、
// 名前付き共有DB + 接続1本で1つのDBを共有します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db), "failed to migrate test schema")

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ReviewLimit = config.DefaultReviewLimit
	cfg.App.Scheduler = config.SchedulerConfig{
		FastAnswerSeconds:     config.DefaultFastAnswerSeconds,
		SlowAnswerSeconds:     config.DefaultSlowAnswerSeconds,
		WeakEaseThreshold:     config.DefaultWeakEaseThreshold,
		MasteredEaseThreshold: config.DefaultMasteredEaseThreshold,
		MasteredStreak:        config.DefaultMasteredStreak,
	}
	return cfg
}

// fixedClock はテストで時刻を固定するための Clock 実装です
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// testStack はサービス層一式をまとめた依存グラフです
type testStack struct {
	db          *gorm.DB
	cfg         *config.Config
	wordRepo    repository.WordRepository
	statsRepo   repository.StatisticsRepository
	recordRepo  repository.StudyRecordRepository
	noteRepo    repository.WrongNoteRepository
	examRepo    repository.ExamRepository
	settingRepo repository.SettingRepository

	notes     WrongNoteManager
	scheduler SchedulerService
	study     StudyService
	review    ReviewService
	exam      ExamService
	words     WordService
}

func newTestStack(t *testing.T, clock Clock) *testStack {
	t.Helper()

	db := setupTestDB(t)
	cfg := newTestConfig()

	s := &testStack{
		db:          db,
		cfg:         cfg,
		wordRepo:    repository.NewGormWordRepository(),
		statsRepo:   repository.NewGormStatisticsRepository(),
		recordRepo:  repository.NewGormStudyRecordRepository(),
		noteRepo:    repository.NewGormWrongNoteRepository(),
		examRepo:    repository.NewGormExamRepository(),
		settingRepo: repository.NewGormSettingRepository(),
	}
	s.notes = NewWrongNoteManager(db, s.noteRepo)
	s.scheduler = NewSchedulerService(db, s.wordRepo, s.statsRepo, s.notes, cfg)
	s.study = NewStudyService(db, s.recordRepo, s.scheduler, clock)
	s.review = NewReviewService(db, s.wordRepo, s.statsRepo, s.noteRepo, s.settingRepo, cfg)
	s.exam = NewExamService(db, s.examRepo, s.wordRepo, s.study, s.scheduler, clock)
	s.words = NewWordService(db, s.wordRepo, s.statsRepo, s.recordRepo, s.noteRepo, s.examRepo)
	return s
}

func (s *testStack) createWord(t *testing.T, term string) *model.Word {
	t.Helper()
	word := &model.Word{
		WordID:     uuid.New(),
		Term:       term,
		Definition: term + " の意味",
	}
	require.NoError(t, s.wordRepo.Create(context.Background(), s.db, word))
	return word
}

// today はテストの基準日 (今日の0時) を返します。
// 学習日は単語の作成日以降でなければならないため、常に現在から前方に進めます。
func today() time.Time {
	return startOfDay(time.Now())
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
