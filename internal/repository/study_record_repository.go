//go:generate mockery --name StudyRecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyRecordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.StudyRecord) error
	FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID, limit int) ([]*model.StudyRecord, error)
	DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	CountByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (int64, error)
}

type gormStudyRecordRepository struct{}

func NewGormStudyRecordRepository() StudyRecordRepository {
	return &gormStudyRecordRepository{}
}

func (r *gormStudyRecordRepository) Create(ctx context.Context, tx *gorm.DB, record *model.StudyRecord) error {
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		return fmt.Errorf("gormStudyRecordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStudyRecordRepository) FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID, limit int) ([]*model.StudyRecord, error) {
	var records []*model.StudyRecord
	query := db.WithContext(ctx).Where("word_id = ?", wordID).Order("studied_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStudyRecordRepository.FindByWordID: %w", result.Error)
	}
	return records, nil
}

// DeleteByWordID は単語削除のカスケードでのみ使われます (履歴は追記専用)
func (r *gormStudyRecordRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.StudyRecord{})
	if result.Error != nil {
		return fmt.Errorf("gormStudyRecordRepository.DeleteByWordID: %w", result.Error)
	}
	return nil
}

func (r *gormStudyRecordRepository) CountByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.StudyRecord{}).Where("word_id = ?", wordID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormStudyRecordRepository.CountByWordID: %w", result.Error)
	}
	return count, nil
}
