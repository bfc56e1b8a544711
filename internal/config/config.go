package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	CatalogBaseURL  string        `mapstructure:"CATALOG_BASE_URL"`
	CatalogFreshFor time.Duration `mapstructure:"CATALOG_FRESH_FOR"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	SessionTTL      time.Duration `mapstructure:"SESSION_TTL"`
	AdminUsername   string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword   string        `mapstructure:"ADMIN_PASSWORD"`
}

// Load 讀取環境變數與可選的.env檔
// 單純回傳錯誤，由外部決定要不要Fatal
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CATALOG_BASE_URL", "https://fakestoreapi.com")
	v.SetDefault("CATALOG_FRESH_FOR", time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	// demo帳密，不是安全機制
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		// .env不存在就只用環境變數
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
