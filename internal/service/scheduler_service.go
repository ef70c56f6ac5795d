// internal/service/scheduler_service.go
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"smart_vocab/internal/config"
	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QualityPolicy は正誤と回答時間をSM-2の品質値(0〜5)に写像する調整可能な方針です。
// 値は設定で変更できます (隠し定数にしない)。
type QualityPolicy struct {
	FastAnswerSeconds float64 // これ以下で正解なら品質5
	SlowAnswerSeconds float64 // これ超過の正解は品質3
}

// Map は1回の学習結果を品質値に変換します。
// 回答時間0は未計測として扱い、正解なら品質4とします。
func (p QualityPolicy) Map(isCorrect bool, responseTime float64) int {
	if !isCorrect {
		return 1
	}
	switch {
	case responseTime > 0 && responseTime <= p.FastAnswerSeconds:
		return 5
	case responseTime > p.SlowAnswerSeconds:
		return 3
	default:
		return 4
	}
}

// SchedulerService はSM-2方式のスケジューリング状態機械です。
// 単語統計の更新はすべてここを通ります。
type SchedulerService interface {
	// RecordOutcome は1回の学習結果を反映し、更新後の統計を返します。
	// 単語ロックとトランザクションを内部で確保します。再試行はしません。
	RecordOutcome(ctx context.Context, wordID uuid.UUID, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.WordStatistics, error)
	// ApplyOutcome は呼び出し元のトランザクション内で状態遷移を適用します。
	// ロックは呼び出し元 (LockWords) が確保している前提です。
	ApplyOutcome(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.WordStatistics, error)
	// LockWords は対象単語の排他区間をID順に確保し、解放関数を返します。
	LockWords(wordIDs []uuid.UUID) (unlock func())
}

type schedulerService struct {
	db        *gorm.DB
	wordRepo  repository.WordRepository
	statsRepo repository.StatisticsRepository
	notes     WrongNoteManager
	policy    QualityPolicy
	cfg       *config.Config
	locks     *keyedMutex
}

func NewSchedulerService(db *gorm.DB, wordRepo repository.WordRepository, statsRepo repository.StatisticsRepository, notes WrongNoteManager, cfg *config.Config) SchedulerService {
	return &schedulerService{
		db:        db,
		wordRepo:  wordRepo,
		statsRepo: statsRepo,
		notes:     notes,
		policy: QualityPolicy{
			FastAnswerSeconds: cfg.App.Scheduler.FastAnswerSeconds,
			SlowAnswerSeconds: cfg.App.Scheduler.SlowAnswerSeconds,
		},
		cfg:   cfg,
		locks: newKeyedMutex(),
	}
}

// nextSM2 はSM-2の遷移関数です。
// EF' = max(1.3, EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)))
// 不正解は間隔0に戻して短周期の復習に再投入、正解は 0→1日、1→6日、
// 以後 round(間隔×EF') と伸ばします (最初の2回はEFがまだ判別力を持たないため固定ステップ)。
func nextSM2(ease float64, intervalDays, quality int) (float64, int) {
	q := float64(quality)
	newEase := ease + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEase < config.SM2MinEaseFactor {
		newEase = config.SM2MinEaseFactor
	}

	if quality < 3 {
		return newEase, 0
	}

	switch intervalDays {
	case 0:
		return newEase, 1
	case 1:
		return newEase, 6
	default:
		next := int(math.Round(float64(intervalDays) * newEase))
		if next < 1 {
			next = 1
		}
		return newEase, next
	}
}

func (s *schedulerService) LockWords(wordIDs []uuid.UUID) (unlock func()) {
	return s.locks.lockAll(wordIDs)
}

func (s *schedulerService) RecordOutcome(ctx context.Context, wordID uuid.UUID, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.WordStatistics, error) {
	unlock := s.locks.lockAll([]uuid.UUID{wordID})
	defer unlock()

	var stats *model.WordStatistics
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applyErr error
		stats, applyErr = s.ApplyOutcome(ctx, tx, wordID, isCorrect, responseTime, studiedAt)
		return applyErr
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *schedulerService) ApplyOutcome(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.WordStatistics, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	word, err := s.wordRepo.FindByID(ctx, tx, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "対象の単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		return nil, err
	}

	if studiedAt.IsZero() || studiedAt.Before(startOfDay(word.CreatedAt)) {
		return nil, model.NewAppError("INVALID_STUDY_DATE", "学習日は単語の作成日より前にできません。", "studied_at", model.ErrInvalidInput)
	}

	stats, err := s.statsRepo.FindByWordID(ctx, tx, wordID)
	isNew := errors.Is(err, model.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		// 初回学習時に遅延作成
		stats = &model.WordStatistics{
			StatsID:    uuid.New(),
			WordID:     wordID,
			EaseFactor: config.SM2InitialEaseFactor,
		}
	}

	quality := s.policy.Map(isCorrect, responseTime)
	newEase, newInterval := nextSM2(stats.EaseFactor, stats.IntervalDays, quality)

	stats.TotalAttempts++
	if isCorrect {
		stats.CorrectCount++
		stats.ConsecutiveCorrect++
	} else {
		stats.WrongCount++
		stats.ConsecutiveCorrect = 0
	}
	stats.EaseFactor = newEase
	stats.IntervalDays = newInterval
	studied := studiedAt
	stats.LastStudiedAt = &studied
	due := startOfDay(studiedAt).AddDate(0, 0, newInterval)
	stats.NextDueDate = &due

	if isNew {
		if createErr := s.statsRepo.Create(ctx, tx, stats); createErr != nil {
			return nil, createErr
		}
	} else {
		if updateErr := s.statsRepo.Update(ctx, tx, stats); updateErr != nil {
			return nil, updateErr
		}
	}

	// 誤答ノートの判定。弱い単語は登録、習得した単語は解除。
	sc := s.cfg.App.Scheduler
	switch {
	case !isCorrect || newEase < sc.WeakEaseThreshold:
		if noteErr := s.notes.Upsert(ctx, tx, wordID, studiedAt); noteErr != nil {
			return nil, noteErr
		}
	case stats.ConsecutiveCorrect >= sc.MasteredStreak && newEase >= sc.MasteredEaseThreshold:
		if noteErr := s.notes.Clear(ctx, tx, wordID); noteErr != nil {
			return nil, noteErr
		}
	}

	logger.Debug("Outcome applied",
		"quality", quality,
		"ease_factor", stats.EaseFactor,
		"interval_days", stats.IntervalDays,
		"next_due_date", due,
	)
	return stats, nil
}
