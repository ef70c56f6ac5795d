//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smart_vocab/internal/middleware"
	"smart_vocab/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error)
	Search(ctx context.Context, db *gorm.DB, keyword string) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	Exists(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (bool, error)
	CheckTermExists(ctx context.Context, db *gorm.DB, term string, excludeWordID *uuid.UUID) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

// isDuplicateKeyError はドライバ固有の一意制約違反を判定します
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite (mattn) はエラー型を公開していないため文字列で判定
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"term", word.Term,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Search(ctx context.Context, db *gorm.DB, keyword string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	pattern := "%" + keyword + "%"
	result := db.WithContext(ctx).
		Where("term LIKE ? OR definition LIKE ? OR memo LIKE ?", pattern, pattern, pattern).
		Order("term ASC").
		Find(&words)
	if result.Error != nil {
		logger.Error("Error searching words in DB", "error", result.Error, "keyword", keyword)
		return nil, fmt.Errorf("gormWordRepository.Search: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("word_id = ?", wordID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Exists(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Where("word_id = ?", wordID).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("gormWordRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, term string, excludeWordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).Where("term = ?", term)
	if excludeWordID != nil {
		query = query.Where("word_id != ?", *excludeWordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"term", term,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
