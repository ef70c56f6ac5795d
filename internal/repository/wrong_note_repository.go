//go:generate mockery --name WrongNoteRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WrongNoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.WrongNote) error
	FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WrongNote, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.WrongNote, error)
	Update(ctx context.Context, tx *gorm.DB, note *model.WrongNote) error
	DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormWrongNoteRepository struct{}

func NewGormWrongNoteRepository() WrongNoteRepository {
	return &gormWrongNoteRepository{}
}

func (r *gormWrongNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.WrongNote) error {
	result := tx.WithContext(ctx).Create(note)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			// word_id は一意。既存分の更新は Update 経由で行う
			return model.ErrConflict
		}
		return fmt.Errorf("gormWrongNoteRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWrongNoteRepository) FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.WrongNote, error) {
	var note model.WrongNote
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormWrongNoteRepository.FindByWordID: %w", result.Error)
	}
	return &note, nil
}

func (r *gormWrongNoteRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.WrongNote, error) {
	var notes []*model.WrongNote
	result := db.WithContext(ctx).
		Preload("Word").
		Preload("Word.Statistics").
		Order("added_at DESC, word_id ASC").
		Find(&notes)
	if result.Error != nil {
		return nil, fmt.Errorf("gormWrongNoteRepository.FindAll: %w", result.Error)
	}
	return notes, nil
}

func (r *gormWrongNoteRepository) Update(ctx context.Context, tx *gorm.DB, note *model.WrongNote) error {
	result := tx.WithContext(ctx).Save(note)
	if result.Error != nil {
		return fmt.Errorf("gormWrongNoteRepository.Update: %w", result.Error)
	}
	return nil
}

// DeleteByWordID はフラグされていない単語に対しては何もしません (冪等)
func (r *gormWrongNoteRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.WrongNote{})
	if result.Error != nil {
		return fmt.Errorf("gormWrongNoteRepository.DeleteByWordID: %w", result.Error)
	}
	return nil
}
