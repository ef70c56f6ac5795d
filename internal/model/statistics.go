// internal/model/statistics.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WordStatistics は単語ごとの学習統計とSM-2パラメータを表します。
// 初回学習時に遅延作成され、以後はスケジューラのみが更新します。
type WordStatistics struct {
	StatsID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	WordID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"word_id"` // 単語と1:1
	TotalAttempts      int        `gorm:"not null;default:0" json:"total_attempts"`
	CorrectCount       int        `gorm:"not null;default:0" json:"correct_count"`
	WrongCount         int        `gorm:"not null;default:0" json:"wrong_count"`
	ConsecutiveCorrect int        `gorm:"not null;default:0" json:"consecutive_correct"` // 連続正解数 (習得判定用)
	EaseFactor         float64    `gorm:"not null;default:2.5" json:"ease_factor"`       // 下限 1.3
	IntervalDays       int        `gorm:"not null;default:0" json:"interval_days"`       // 0以上
	LastStudiedAt      *time.Time `json:"last_studied_at"`
	NextDueDate        *time.Time `gorm:"index" json:"next_due_date"`
	CreatedAt          time.Time  `json:"-"`
	UpdatedAt          time.Time  `json:"-"`

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (WordStatistics) TableName() string {
	return "word_statistics"
}

// WrongRate は誤答率(%)を返します。未学習の単語は0。
func (s *WordStatistics) WrongRate() float64 {
	if s == nil || s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.WrongCount) / float64(s.TotalAttempts) * 100
}
