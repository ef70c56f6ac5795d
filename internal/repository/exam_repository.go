//go:generate mockery --name ExamRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamRepository interface {
	CreateSession(ctx context.Context, tx *gorm.DB, session *model.ExamSession) error
	CreateDetail(ctx context.Context, tx *gorm.DB, detail *model.ExamDetail) error
	FindSessionByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ExamSession, error)
	FindRecentSessions(ctx context.Context, db *gorm.DB, limit int) ([]*model.ExamSession, error)
	DeleteDetailsByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormExamRepository struct{}

func NewGormExamRepository() ExamRepository {
	return &gormExamRepository{}
}

func (r *gormExamRepository) CreateSession(ctx context.Context, tx *gorm.DB, session *model.ExamSession) error {
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		return fmt.Errorf("gormExamRepository.CreateSession: %w", result.Error)
	}
	return nil
}

func (r *gormExamRepository) CreateDetail(ctx context.Context, tx *gorm.DB, detail *model.ExamDetail) error {
	result := tx.WithContext(ctx).Create(detail)
	if result.Error != nil {
		return fmt.Errorf("gormExamRepository.CreateDetail: %w", result.Error)
	}
	return nil
}

func (r *gormExamRepository) FindSessionByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.ExamSession, error) {
	var session model.ExamSession
	result := db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_details.question_number ASC")
		}).
		Where("session_id = ?", sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormExamRepository.FindSessionByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormExamRepository) FindRecentSessions(ctx context.Context, db *gorm.DB, limit int) ([]*model.ExamSession, error) {
	var sessions []*model.ExamSession
	query := db.WithContext(ctx).Order("taken_at DESC, session_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&sessions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormExamRepository.FindRecentSessions: %w", result.Error)
	}
	return sessions, nil
}

// DeleteDetailsByWordID は単語削除のカスケードで使われます。
// 同一セッションの他の明細とセッションヘッダは残します。
func (r *gormExamRepository) DeleteDetailsByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.ExamDetail{})
	if result.Error != nil {
		return fmt.Errorf("gormExamRepository.DeleteDetailsByWordID: %w", result.Error)
	}
	return nil
}
