// internal/service/exam_service.go
package service

import (
	"context"
	"errors"

	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamService は試験1回分の結果をまとめて取り込む集計コンポーネントです。
// セッション・明細・各単語の学習反映を単一トランザクションで行い、
// 途中で失敗した場合は何も書き込まれません。
type ExamService interface {
	CreateSession(ctx context.Context, req *model.PostExamRequest) (*model.ExamSession, error)
	GetHistory(ctx context.Context, limit int) ([]*model.ExamSession, error)
	GetSessionDetails(ctx context.Context, sessionID uuid.UUID) (*model.ExamSession, error)
}

type examService struct {
	db        *gorm.DB
	examRepo  repository.ExamRepository
	wordRepo  repository.WordRepository
	studySvc  StudyService
	scheduler SchedulerService
	clock     Clock
}

func NewExamService(db *gorm.DB, examRepo repository.ExamRepository, wordRepo repository.WordRepository, studySvc StudyService, scheduler SchedulerService, clock Clock) ExamService {
	return &examService{
		db:        db,
		examRepo:  examRepo,
		wordRepo:  wordRepo,
		studySvc:  studySvc,
		scheduler: scheduler,
		clock:     clock,
	}
}

func (s *examService) CreateSession(ctx context.Context, req *model.PostExamRequest) (*model.ExamSession, error) {
	logger := middleware.GetLogger(ctx)

	examType := model.ExamType(req.ExamType)
	if !examType.Valid() {
		return nil, model.NewAppError("INVALID_EXAM_TYPE", "試験形式は short_answer か multiple_choice を指定してください。", "exam_type", model.ErrInvalidInput)
	}
	if len(req.Results) == 0 {
		return nil, model.NewAppError("EMPTY_EXAM_RESULTS", "試験結果が1問も含まれていません。", "results", model.ErrInvalidInput)
	}

	takenAt := s.clock.Now()

	// デッドロック回避のため対象単語のロックをID順で一括確保してから書き込む
	wordIDs := make([]uuid.UUID, 0, len(req.Results))
	for _, r := range req.Results {
		wordIDs = append(wordIDs, r.WordID)
	}
	unlock := s.scheduler.LockWords(wordIDs)
	defer unlock()

	session := &model.ExamSession{
		SessionID:        uuid.New(),
		ExamType:         examType,
		TakenAt:          takenAt,
		TotalWords:       len(req.Results),
		TimeTakenSeconds: req.TimeTakenSeconds,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先に全単語の存在を確認し、未知の単語が混ざった試験は丸ごと拒否する
		for _, r := range req.Results {
			exists, existsErr := s.wordRepo.Exists(ctx, tx, r.WordID)
			if existsErr != nil {
				return existsErr
			}
			if !exists {
				return model.NewAppError("WORD_NOT_FOUND", "試験結果に存在しない単語が含まれています。", "word_id", model.ErrNotFound)
			}
		}

		correct := 0
		for _, r := range req.Results {
			if r.IsCorrect != nil && *r.IsCorrect {
				correct++
			}
		}
		session.CorrectCount = correct

		if createErr := s.examRepo.CreateSession(ctx, tx, session); createErr != nil {
			return createErr
		}

		for i, r := range req.Results {
			isCorrect := r.IsCorrect != nil && *r.IsCorrect

			detail := &model.ExamDetail{
				DetailID:       uuid.New(),
				SessionID:      session.SessionID,
				WordID:         r.WordID,
				QuestionNumber: i + 1,
				UserAnswer:     r.UserAnswer,
				IsCorrect:      isCorrect,
			}
			if detailErr := s.examRepo.CreateDetail(ctx, tx, detail); detailErr != nil {
				return detailErr
			}

			// 各問を学習イベントとして反映 (履歴・統計・誤答ノートが連動する)
			if _, submitErr := s.studySvc.SubmitInTx(ctx, tx, r.WordID, model.ModeExam, isCorrect, r.ResponseTime, takenAt); submitErr != nil {
				return submitErr
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Exam session rolled back", "error", err, "total_words", len(req.Results))
		return nil, err
	}

	logger.Info("Exam session recorded",
		"session_id", session.SessionID,
		"exam_type", string(examType),
		"total_words", session.TotalWords,
		"correct_count", session.CorrectCount,
	)
	return session, nil
}

func (s *examService) GetHistory(ctx context.Context, limit int) ([]*model.ExamSession, error) {
	logger := middleware.GetLogger(ctx)
	sessions, err := s.examRepo.FindRecentSessions(ctx, s.db, limit)
	if err != nil {
		logger.Error("Failed to list exam sessions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "試験履歴の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return sessions, nil
}

func (s *examService) GetSessionDetails(ctx context.Context, sessionID uuid.UUID) (*model.ExamSession, error) {
	session, err := s.examRepo.FindSessionByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("EXAM_SESSION_NOT_FOUND", "対象の試験セッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		return nil, err
	}
	return session, nil
}
