// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word は単語とその訳を表します
type Word struct {
	WordID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	Term       string    `gorm:"not null;uniqueIndex" json:"term"` // 単語 (表記は一意)
	Definition string    `gorm:"not null" json:"definition"`       // 訳
	Memo       string    `json:"memo"`                             // メモ (任意)
	IsFavorite bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Statistics *WordStatistics `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term       string `json:"term" validate:"required,max=100"`
	Definition string `json:"definition" validate:"required,max=500"`
	Memo       string `json:"memo" validate:"omitempty,max=1000"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Term       *string `json:"term,omitempty" validate:"omitempty,min=1,max=100"`
	Definition *string `json:"definition,omitempty" validate:"omitempty,min=1,max=500"`
	Memo       *string `json:"memo,omitempty" validate:"omitempty,max=1000"`
}
