// internal/service/wrong_note_manager.go
package service

import (
	"context"
	"errors"
	"time"

	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"
	"smart_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WrongNoteManager は誤答ノートのライフサイクルを唯一管理するコンポーネントです。
// 登録・解除の判断はスケジューラだけが行い、外部からは参照のみ許します。
type WrongNoteManager interface {
	IsFlagged(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (bool, error)
	// Upsert は未登録なら作成し、登録済みなら復習回数と最終復習日を進めます。
	Upsert(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, date time.Time) error
	// Clear は登録済みなら削除します。未登録への呼び出しはエラーではなく何もしません。
	Clear(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	List(ctx context.Context) ([]*model.WrongNoteResponse, error)
}

type wrongNoteManager struct {
	db       *gorm.DB
	noteRepo repository.WrongNoteRepository
}

func NewWrongNoteManager(db *gorm.DB, noteRepo repository.WrongNoteRepository) WrongNoteManager {
	return &wrongNoteManager{
		db:       db,
		noteRepo: noteRepo,
	}
}

func (m *wrongNoteManager) IsFlagged(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (bool, error) {
	if db == nil {
		db = m.db
	}
	_, err := m.noteRepo.FindByWordID(ctx, db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *wrongNoteManager) Upsert(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, date time.Time) error {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	note, err := m.noteRepo.FindByWordID(ctx, tx, wordID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	if errors.Is(err, model.ErrNotFound) {
		note = &model.WrongNote{
			NoteID:  uuid.New(),
			WordID:  wordID,
			AddedAt: date,
		}
		if createErr := m.noteRepo.Create(ctx, tx, note); createErr != nil {
			return createErr
		}
		logger.Info("Word flagged for remediation")
		return nil
	}

	reviewed := date
	note.LastReviewedAt = &reviewed
	note.ReviewCount++
	if updateErr := m.noteRepo.Update(ctx, tx, note); updateErr != nil {
		return updateErr
	}
	logger.Debug("Wrong note review bumped", "review_count", note.ReviewCount)
	return nil
}

func (m *wrongNoteManager) Clear(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)
	if err := m.noteRepo.DeleteByWordID(ctx, tx, wordID); err != nil {
		return err
	}
	logger.Debug("Wrong note cleared if present")
	return nil
}

func (m *wrongNoteManager) List(ctx context.Context) ([]*model.WrongNoteResponse, error) {
	logger := middleware.GetLogger(ctx)

	notes, err := m.noteRepo.FindAll(ctx, m.db)
	if err != nil {
		logger.Error("Failed to list wrong notes", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "誤答ノートの取得に失敗しました。", "", model.ErrInternalServer)
	}

	responses := make([]*model.WrongNoteResponse, 0, len(notes))
	for _, n := range notes {
		if n.Word == nil {
			logger.Warn("Found wrong note with nil Word, skipping", "note_id", n.NoteID)
			continue
		}
		responses = append(responses, &model.WrongNoteResponse{
			NoteID:         n.NoteID,
			WordID:         n.WordID,
			Term:           n.Word.Term,
			Definition:     n.Word.Definition,
			AddedAt:        n.AddedAt,
			LastReviewedAt: n.LastReviewedAt,
			ReviewCount:    n.ReviewCount,
			WrongRate:      n.Word.Statistics.WrongRate(),
		})
	}
	return responses, nil
}
