// internal/model/wrong_note.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WrongNote は復習強化対象としてフラグされた単語を表します。
// 作成・削除の判断はスケジューラが行います。
type WrongNote struct {
	NoteID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"note_id"`
	WordID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"word_id"` // 単語ごとに1件
	AddedAt        time.Time  `gorm:"not null" json:"added_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	ReviewCount    int        `gorm:"not null;default:0" json:"review_count"`

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (WrongNote) TableName() string {
	return "wrong_notes"
}

// WrongNoteResponse は誤答ノート一覧のレスポンスDTO
type WrongNoteResponse struct {
	NoteID         uuid.UUID  `json:"note_id"`
	WordID         uuid.UUID  `json:"word_id"`
	Term           string     `json:"term"`
	Definition     string     `json:"definition"`
	AddedAt        time.Time  `json:"added_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	ReviewCount    int        `json:"review_count"`
	WrongRate      float64    `json:"wrong_rate"`
}
