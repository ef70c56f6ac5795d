// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "SmartVocab"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultReviewLimit = 50
	DefaultDatabaseURL = "file:data/vocabulary.db"
)

// SuperMemo-2 (SM-2) アルゴリズム定数
const (
	SM2InitialEaseFactor = 2.5
	SM2MinEaseFactor     = 1.3
)

// スケジューラ調整値の既定。config.yaml で上書き可能。
const (
	DefaultFastAnswerSeconds     = 5.0
	DefaultSlowAnswerSeconds     = 20.0
	DefaultWeakEaseThreshold     = 2.0
	DefaultMasteredEaseThreshold = 2.5
	DefaultMasteredStreak        = 3
)

// user_settings テーブルに初期投入する既定値
var DefaultUserSettings = map[string]string{
	"daily_word_goal":      "50",
	"daily_time_goal":      "30",
	"flashcard_time_limit": "10",
	"exam_time_limit":      "600",
	"theme":                "light",
}
