package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read from environment
// variables with an optional .env file for local development.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	App    AppConfig
}

type ServerConfig struct {
	Addr    string
	GinMode string
}

// DBConfig selects the database driver ("postgres" or "mysql") and its
// connection parameters.
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the driver-specific connection string.
func (c DBConfig) DSN() string {
	if c.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type JWTConfig struct {
	Secret  string
	Timeout time.Duration
}

type AppConfig struct {
	DefaultLocale string
	LogLevel      string
}

// Load reads configuration from the environment. Variable names follow the
// section structure: SERVER_ADDR, DB_HOST, JWT_SECRET, APP_LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.gin_mode", "debug")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "caseuser")
	v.SetDefault("db.password", "casepassword")
	v.SetDefault("db.name", "case_management")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("jwt.timeout", "30m")
	v.SetDefault("app.default_locale", "en")
	v.SetDefault("app.log_level", "info")

	cfg := &Config{
		Server: ServerConfig{
			Addr:    v.GetString("server.addr"),
			GinMode: v.GetString("server.gin_mode"),
		},
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		JWT: JWTConfig{
			Secret:  v.GetString("jwt.secret"),
			Timeout: v.GetDuration("jwt.timeout"),
		},
		App: AppConfig{
			DefaultLocale: v.GetString("app.default_locale"),
			LogLevel:      v.GetString("app.log_level"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "mysql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}
