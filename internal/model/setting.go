// internal/model/setting.go
package model

import "time"

// Setting は利用者設定のキー/値ペアです。
// スケジューラからは読み取り専用の入力として扱われます。
type Setting struct {
	Key       string    `gorm:"primaryKey;column:setting_key" json:"key"`
	Value     string    `gorm:"not null;column:setting_value" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "user_settings"
}

// 設定キー
const (
	SettingDailyWordGoal      = "daily_word_goal"
	SettingDailyTimeGoal      = "daily_time_goal"
	SettingFlashcardTimeLimit = "flashcard_time_limit"
	SettingExamTimeLimit      = "exam_time_limit"
	SettingTheme              = "theme"
)
