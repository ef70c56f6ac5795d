// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewReason はその単語がキューに含まれた理由です
type ReviewReason string

const (
	ReasonWrongNote ReviewReason = "wrong_note" // 誤答ノート対象 (期日に関わらず含める)
	ReasonNew       ReviewReason = "new"        // 未学習
	ReasonDue       ReviewReason = "due"        // 復習期日到来
)

// ReviewWordResponse は復習キューのレスポンスDTO
type ReviewWordResponse struct {
	WordID      uuid.UUID    `json:"word_id"`
	Term        string       `json:"term"`
	Definition  string       `json:"definition"` // 正解表示用に含める
	Memo        string       `json:"memo,omitempty"`
	Reason      ReviewReason `json:"reason"`
	EaseFactor  float64      `json:"ease_factor,omitempty"`
	NextDueDate *time.Time   `json:"next_due_date,omitempty"`
}
