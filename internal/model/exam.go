// internal/model/exam.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamType は試験の出題形式です
type ExamType string

const (
	ExamShortAnswer    ExamType = "short_answer"
	ExamMultipleChoice ExamType = "multiple_choice"
)

func (t ExamType) Valid() bool {
	return t == ExamShortAnswer || t == ExamMultipleChoice
}

// ExamSession は1回の試験のヘッダを表します
type ExamSession struct {
	SessionID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	ExamType         ExamType  `gorm:"not null" json:"exam_type"`
	TakenAt          time.Time `gorm:"not null;index" json:"taken_at"`
	TotalWords       int       `gorm:"not null" json:"total_words"`
	CorrectCount     int       `gorm:"not null" json:"correct_count"`
	TimeTakenSeconds int       `gorm:"not null;default:0" json:"time_taken_seconds"`
	CreatedAt        time.Time `json:"-"`

	// 関連 (Preload用)
	Details []*ExamDetail `gorm:"foreignKey:SessionID;references:SessionID" json:"details,omitempty"`
}

func (ExamSession) TableName() string {
	return "exam_sessions"
}

// ExamDetail は試験内の1問の結果を表します。セッションと共に削除されます。
type ExamDetail struct {
	DetailID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"detail_id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	WordID         uuid.UUID `gorm:"type:uuid;not null;index" json:"word_id"`
	QuestionNumber int       `gorm:"not null" json:"question_number"`
	UserAnswer     string    `json:"user_answer"` // 利用者の回答そのまま
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	CreatedAt      time.Time `json:"-"`
}

func (ExamDetail) TableName() string {
	return "exam_details"
}

// 試験結果1問分のリクエストDTO
type ExamQuestionResult struct {
	WordID       uuid.UUID `json:"word_id" validate:"required"`
	UserAnswer   string    `json:"user_answer" validate:"max=500"`
	IsCorrect    *bool     `json:"is_correct" validate:"required"`
	ResponseTime float64   `json:"response_time" validate:"omitempty,gte=0"`
}

// 試験結果登録リクエストDTO
type PostExamRequest struct {
	ExamType         string               `json:"exam_type" validate:"required,oneof=short_answer multiple_choice"`
	TimeTakenSeconds int                  `json:"time_taken_seconds" validate:"gte=0"`
	Results          []ExamQuestionResult `json:"results" validate:"required,min=1,dive"`
}
