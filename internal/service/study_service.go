// internal/service/study_service.go
package service

import (
	"context"
	"time"

	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyService は学習イベントの受付口 (Attempt Recorder) です。
// 履歴の追記とスケジューラ更新を同一トランザクションで行い、
// 履歴と統計が食い違う瞬間を作りません。
type StudyService interface {
	Submit(ctx context.Context, wordID uuid.UUID, mode model.StudyMode, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.SubmitAttemptResponse, error)
	// SubmitInTx は試験集計など外側のトランザクションから呼ばれる版です。
	// 単語ロックは呼び出し元が確保している前提です。
	SubmitInTx(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, mode model.StudyMode, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.SubmitAttemptResponse, error)
	GetHistory(ctx context.Context, wordID uuid.UUID, limit int) ([]*model.StudyRecord, error)
}

type studyService struct {
	db         *gorm.DB
	recordRepo repository.StudyRecordRepository
	scheduler  SchedulerService
	clock      Clock
}

func NewStudyService(db *gorm.DB, recordRepo repository.StudyRecordRepository, scheduler SchedulerService, clock Clock) StudyService {
	return &studyService{
		db:         db,
		recordRepo: recordRepo,
		scheduler:  scheduler,
		clock:      clock,
	}
}

func (s *studyService) Submit(ctx context.Context, wordID uuid.UUID, mode model.StudyMode, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.SubmitAttemptResponse, error) {
	if err := validateAttempt(mode, responseTime); err != nil {
		return nil, err
	}
	if studiedAt.IsZero() {
		studiedAt = s.clock.Now()
	}

	unlock := s.scheduler.LockWords([]uuid.UUID{wordID})
	defer unlock()

	var resp *model.SubmitAttemptResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.SubmitInTx(ctx, tx, wordID, mode, isCorrect, responseTime, studiedAt)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *studyService) SubmitInTx(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, mode model.StudyMode, isCorrect bool, responseTime float64, studiedAt time.Time) (*model.SubmitAttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID, "mode", string(mode))

	if err := validateAttempt(mode, responseTime); err != nil {
		return nil, err
	}

	// スケジューラを先に適用することで、単語未存在・日付不正の場合に履歴行が残りません
	stats, err := s.scheduler.ApplyOutcome(ctx, tx, wordID, isCorrect, responseTime, studiedAt)
	if err != nil {
		return nil, err
	}

	record := &model.StudyRecord{
		RecordID:     uuid.New(),
		WordID:       wordID,
		StudiedAt:    studiedAt,
		IsCorrect:    isCorrect,
		ResponseTime: responseTime,
		Mode:         mode,
	}
	if createErr := s.recordRepo.Create(ctx, tx, record); createErr != nil {
		logger.Error("Error creating study record", "error", createErr)
		return nil, createErr
	}

	return &model.SubmitAttemptResponse{
		RecordID:     record.RecordID,
		WordID:       wordID,
		EaseFactor:   stats.EaseFactor,
		IntervalDays: stats.IntervalDays,
		NextDueDate:  stats.NextDueDate,
	}, nil
}

func (s *studyService) GetHistory(ctx context.Context, wordID uuid.UUID, limit int) ([]*model.StudyRecord, error) {
	return s.recordRepo.FindByWordID(ctx, s.db, wordID, limit)
}

func validateAttempt(mode model.StudyMode, responseTime float64) error {
	if !mode.Valid() {
		return model.NewAppError("INVALID_MODE", "学習モードは flashcard か exam を指定してください。", "mode", model.ErrInvalidInput)
	}
	if responseTime < 0 {
		return model.NewAppError("INVALID_RESPONSE_TIME", "回答時間は0以上で指定してください。", "response_time", model.ErrInvalidInput)
	}
	return nil
}
