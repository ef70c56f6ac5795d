// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	FastAnswerSeconds     float64 `mapstructure:"fast_answer_seconds"`     // これ以下で正解なら品質5
	SlowAnswerSeconds     float64 `mapstructure:"slow_answer_seconds"`     // これ超過の正解は品質3
	WeakEaseThreshold     float64 `mapstructure:"weak_ease_threshold"`     // EFがこれ未満で誤答ノート対象
	MasteredEaseThreshold float64 `mapstructure:"mastered_ease_threshold"` // 習得判定のEF下限
	MasteredStreak        int     `mapstructure:"mastered_streak"`         // 習得判定の連続正解数
}

type AppConfig struct {
	ReviewLimit int             `mapstructure:"review_limit"` // 1回のキュー取得上限 (設定値が無いときの既定)
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App AppConfig `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)

	return nil
}

// applyDefaults は未設定の項目に既定値を入れます
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.App.ReviewLimit <= 0 {
		c.App.ReviewLimit = DefaultReviewLimit
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set, using local sqlite file.")
		c.Database.URL = DefaultDatabaseURL
	}

	s := &c.App.Scheduler
	if s.FastAnswerSeconds <= 0 {
		s.FastAnswerSeconds = DefaultFastAnswerSeconds
	}
	if s.SlowAnswerSeconds <= 0 {
		s.SlowAnswerSeconds = DefaultSlowAnswerSeconds
	}
	if s.WeakEaseThreshold <= 0 {
		s.WeakEaseThreshold = DefaultWeakEaseThreshold
	}
	if s.MasteredEaseThreshold <= 0 {
		s.MasteredEaseThreshold = DefaultMasteredEaseThreshold
	}
	if s.MasteredStreak <= 0 {
		s.MasteredStreak = DefaultMasteredStreak
	}
}
