//go:generate mockery --name StatisticsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatisticsRepository interface {
	Create(ctx context.Context, tx *gorm.DB, stats *model.WordStatistics) error
	FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WordStatistics, error)
	Update(ctx context.Context, tx *gorm.DB, stats *model.WordStatistics) error
	DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	FindDue(ctx context.Context, db *gorm.DB, asOf time.Time) ([]*model.WordStatistics, error)
	FindStudiedWordIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error)
}

type gormStatisticsRepository struct{}

func NewGormStatisticsRepository() StatisticsRepository {
	return &gormStatisticsRepository{}
}

func (r *gormStatisticsRepository) Create(ctx context.Context, tx *gorm.DB, stats *model.WordStatistics) error {
	result := tx.WithContext(ctx).Create(stats)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			// word_id は1:1。同時作成は整合性違反として呼び出し元へ
			return model.ErrConflict
		}
		return fmt.Errorf("gormStatisticsRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStatisticsRepository) FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WordStatistics, error) {
	var stats model.WordStatistics
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormStatisticsRepository.FindByWordID: %w", result.Error)
	}
	return &stats, nil
}

func (r *gormStatisticsRepository) Update(ctx context.Context, tx *gorm.DB, stats *model.WordStatistics) error {
	result := tx.WithContext(ctx).Save(stats)
	if result.Error != nil {
		return fmt.Errorf("gormStatisticsRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormStatisticsRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.WordStatistics{})
	if result.Error != nil {
		return fmt.Errorf("gormStatisticsRepository.DeleteByWordID: %w", result.Error)
	}
	// 統計が未作成の単語もあるため RowsAffected == 0 はエラーにしない
	return nil
}

// FindDue は next_due_date が asOf 以前の統計を単語付きで返します
func (r *gormStatisticsRepository) FindDue(ctx context.Context, db *gorm.DB, asOf time.Time) ([]*model.WordStatistics, error) {
	var statses []*model.WordStatistics
	result := db.WithContext(ctx).
		Preload("Word").
		Joins("JOIN words ON words.word_id = word_statistics.word_id").
		Where("word_statistics.next_due_date IS NOT NULL AND word_statistics.next_due_date <= ?", asOf).
		Order("word_statistics.next_due_date ASC, word_statistics.word_id ASC").
		Find(&statses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStatisticsRepository.FindDue: %w", result.Error)
	}
	return statses, nil
}

// FindStudiedWordIDs は統計レコードを持つ(=一度でも学習した)単語IDを返します
func (r *gormStatisticsRepository) FindStudiedWordIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := db.WithContext(ctx).Model(&model.WordStatistics{}).Pluck("word_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStatisticsRepository.FindStudiedWordIDs: %w", result.Error)
	}
	return ids, nil
}
