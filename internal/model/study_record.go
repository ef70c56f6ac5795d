// internal/model/study_record.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyMode は学習イベントの種別です
type StudyMode string

const (
	ModeFlashcard StudyMode = "flashcard"
	ModeExam      StudyMode = "exam"
)

// Valid は既知のモードかどうかを返します
func (m StudyMode) Valid() bool {
	return m == ModeFlashcard || m == ModeExam
}

// StudyRecord は1回の学習イベントを表す追記専用の履歴レコードです。
// 単語削除時のカスケード以外では変更・削除されません。
type StudyRecord struct {
	RecordID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"record_id"`
	WordID       uuid.UUID `gorm:"type:uuid;not null;index" json:"word_id"`
	StudiedAt    time.Time `gorm:"not null;index" json:"studied_at"`
	IsCorrect    bool      `gorm:"not null" json:"is_correct"`
	ResponseTime float64   `gorm:"not null;default:0" json:"response_time"` // 回答時間(秒)。0は未計測
	Mode         StudyMode `gorm:"not null" json:"mode"`
	CreatedAt    time.Time `json:"-"`
}

func (StudyRecord) TableName() string {
	return "study_records"
}

// 学習結果送信リクエストDTO
type SubmitAttemptRequest struct {
	WordID       uuid.UUID `json:"word_id" validate:"required"`
	Mode         string    `json:"mode" validate:"required,oneof=flashcard exam"`
	IsCorrect    *bool     `json:"is_correct" validate:"required"`
	ResponseTime float64   `json:"response_time" validate:"omitempty,gte=0"`
}

// 学習結果送信レスポンスDTO
type SubmitAttemptResponse struct {
	RecordID     uuid.UUID  `json:"record_id"`
	WordID       uuid.UUID  `json:"word_id"`
	EaseFactor   float64    `json:"ease_factor"`
	IntervalDays int        `json:"interval_days"`
	NextDueDate  *time.Time `json:"next_due_date"`
}
