//go:generate mockery --name SettingRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"smart_vocab/internal/model"

	"gorm.io/gorm"
)

// SettingRepository は利用者設定の読み取り口です。
// スケジューラと復習キューからは読み取り専用として扱います。
type SettingRepository interface {
	Get(ctx context.Context, db *gorm.DB, key string) (string, error)
	GetInt(ctx context.Context, db *gorm.DB, key string, fallback int) (int, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Setting, error)
}

type gormSettingRepository struct{}

func NewGormSettingRepository() SettingRepository {
	return &gormSettingRepository{}
}

func (r *gormSettingRepository) Get(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var setting model.Setting
	result := db.WithContext(ctx).Where("setting_key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("gormSettingRepository.Get: %w", result.Error)
	}
	return setting.Value, nil
}

// GetInt は整数設定を読みます。未設定・不正値は fallback を返します。
func (r *gormSettingRepository) GetInt(ctx context.Context, db *gorm.DB, key string, fallback int) (int, error) {
	value, err := r.Get(ctx, db, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fallback, nil
		}
		return 0, err
	}
	n, convErr := strconv.Atoi(value)
	if convErr != nil {
		return fallback, nil
	}
	return n, nil
}

func (r *gormSettingRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Setting, error) {
	var settings []*model.Setting
	result := db.WithContext(ctx).Order("setting_key ASC").Find(&settings)
	if result.Error != nil {
		return nil, fmt.Errorf("gormSettingRepository.FindAll: %w", result.Error)
	}
	return settings, nil
}
