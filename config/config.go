package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath is where Load looks for the JSON configuration file.
var DefaultPath = filepath.Join("config", "config.json")

// AppConfig holds configuration values.
// Sensitive data should never have defaults inside code and must be provided via the config file or the environment.
type AppConfig struct {
	AppPort       string
	JWTSecret     string
	TokenTTLHours int
	// Database
	DBDriver                 string
	DatabaseURI              string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBMaxIdleConns           int
	DBMaxOpenConns           int
	DBConnMaxLifetimeMinutes int
	// Redis backs the token blacklist; empty host means in-memory only
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// CORS origins; "*" allows any
	AllowedOrigins []string
	// Gin framework configuration
	GinMode string
	GinPath string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// Bootstrap data
	SeedOnStart   bool
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// envNames keeps the plain environment names working next to the HUXIANG_ prefixed ones.
var envNames = map[string]string{
	"AppPort":                  "APP_PORT",
	"JWTSecret":                "JWT_SECRET",
	"TokenTTLHours":            "TOKEN_TTL_HOURS",
	"DBDriver":                 "DB_DRIVER",
	"DatabaseURI":              "DATABASE_URI",
	"DBHost":                   "DB_HOST",
	"DBPort":                   "DB_PORT",
	"DBUser":                   "DB_USER",
	"DBPassword":               "DB_PASSWORD",
	"DBName":                   "DB_NAME",
	"DBMaxIdleConns":           "DB_MAX_IDLE_CONNS",
	"DBMaxOpenConns":           "DB_MAX_OPEN_CONNS",
	"DBConnMaxLifetimeMinutes": "DB_CONN_MAX_LIFETIME_MINUTES",
	"RedisHost":                "REDIS_HOST",
	"RedisPort":                "REDIS_PORT",
	"RedisDB":                  "REDIS_DB",
	"RedisPassword":            "REDIS_PASSWORD",
	"AllowedOrigins":           "ALLOWED_ORIGINS",
	"GinMode":                  "GIN_MODE",
	"GinPath":                  "GIN_PATH",
	"LogLevel":                 "LOG_LEVEL",
	"LogPath":                  "LOG_PATH",
	"LogMaxSizeMB":             "LOG_MAX_SIZE_MB",
	"LogMaxBackups":            "LOG_MAX_BACKUPS",
	"LogMaxAgeDays":            "LOG_MAX_AGE_DAYS",
	"LogCompress":              "LOG_COMPRESS",
	"SeedOnStart":              "SEED_ON_START",
	"AdminUsername":            "ADMIN_USERNAME",
	"AdminEmail":               "ADMIN_EMAIL",
	"AdminPassword":            "ADMIN_PASSWORD",
}

// Load reads configuration from DefaultPath, defaults and environment variables.
func Load() (AppConfig, error) {
	return LoadFile(DefaultPath)
}

// LoadFile reads configuration with precedence: environment -> JSON file -> defaults.
// A missing file is not an error.
func LoadFile(path string) (AppConfig, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("HUXIANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envNames {
		if err := v.BindEnv(key, "HUXIANG_"+strings.ToUpper(key), env); err != nil {
			return AppConfig{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AllowedOrigins = splitAndTrim(cfg.AllowedOrigins)

	if cfg.JWTSecret == "" {
		return AppConfig{}, errors.New("JWT_SECRET must be set in the config file or environment")
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("AppPort", "8080")
	v.SetDefault("TokenTTLHours", 72)
	v.SetDefault("DBDriver", "mysql")
	v.SetDefault("DBHost", "127.0.0.1")
	v.SetDefault("DBPort", "3306")
	v.SetDefault("DBUser", "root")
	v.SetDefault("DBName", "huxiang")
	v.SetDefault("DBMaxIdleConns", 5)
	v.SetDefault("DBMaxOpenConns", 20)
	v.SetDefault("DBConnMaxLifetimeMinutes", 30)
	v.SetDefault("RedisPort", 6379)
	v.SetDefault("AllowedOrigins", []string{"*"})
	v.SetDefault("GinMode", "release")
	v.SetDefault("GinPath", filepath.Join("logs", "gin.log"))
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogPath", filepath.Join("logs", "app.log"))
	v.SetDefault("LogMaxSizeMB", 100)
	v.SetDefault("LogMaxBackups", 3)
	v.SetDefault("LogMaxAgeDays", 7)
	v.SetDefault("AdminUsername", "admin")
	v.SetDefault("AdminEmail", "admin@example.com")
}

// splitAndTrim flattens comma separated entries and drops blanks.
func splitAndTrim(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
