package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Data    DataConfig
	Uploads UploadsConfig
	Admin   AdminConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Catalog CatalogConfig
	Cleanup CleanupConfig
	Exports ExportsConfig
}

// DataConfig locates the flat JSON files backing every collection.
type DataConfig struct {
	Dir          string
	CursosFile   string
	CarouselFile string
	MensajesFile string
}

// UploadsConfig controls where uploaded media lands and how large it may be.
type UploadsConfig struct {
	PublicDir    string
	UploadsPath  string
	CarouselPath string
	TmpDir       string
	MaxFileSize  int64
}

// AdminConfig drives the single-operator session gate.
type AdminConfig struct {
	Password      string
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
	CookieSecure  bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig tunes the optional catalog snapshot cache.
type CatalogConfig struct {
	CacheTTL time.Duration
}

// CleanupConfig configures the background media cleanup queue.
type CleanupConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// ExportsConfig toggles the admin CSV/PDF export endpoints.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Data = DataConfig{
		Dir:          v.GetString("DATA_DIR"),
		CursosFile:   v.GetString("DATA_CURSOS_FILE"),
		CarouselFile: v.GetString("DATA_CAROUSEL_FILE"),
		MensajesFile: v.GetString("DATA_MENSAJES_FILE"),
	}

	maxUpload := v.GetInt64("UPLOADS_MAX_FILE_SIZE")
	if maxUpload <= 0 {
		maxUpload = 15 * 1024 * 1024
	}
	cfg.Uploads = UploadsConfig{
		PublicDir:    v.GetString("UPLOADS_PUBLIC_DIR"),
		UploadsPath:  v.GetString("UPLOADS_PATH"),
		CarouselPath: v.GetString("UPLOADS_CAROUSEL_PATH"),
		TmpDir:       v.GetString("UPLOADS_TMP_DIR"),
		MaxFileSize:  maxUpload,
	}

	cfg.Admin = AdminConfig{
		Password:      v.GetString("ADMIN_PASSWORD"),
		PasswordHash:  v.GetString("ADMIN_PASSWORD_HASH"),
		SessionSecret: v.GetString("ADMIN_SESSION_SECRET"),
		SessionTTL:    parseDuration(v.GetString("ADMIN_SESSION_TTL"), 12*time.Hour),
		CookieName:    v.GetString("ADMIN_COOKIE_NAME"),
		CookieSecure:  v.GetBool("ADMIN_COOKIE_SECURE"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Catalog = CatalogConfig{
		CacheTTL: parseDuration(v.GetString("CATALOG_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Cleanup = CleanupConfig{
		Workers:    v.GetInt("CLEANUP_WORKERS"),
		MaxRetries: v.GetInt("CLEANUP_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("CLEANUP_RETRY_DELAY"), 2*time.Second),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DATA_CURSOS_FILE", "cursos.json")
	v.SetDefault("DATA_CAROUSEL_FILE", "carouselImages.json")
	v.SetDefault("DATA_MENSAJES_FILE", "mensajes.json")

	v.SetDefault("UPLOADS_PUBLIC_DIR", "./public")
	v.SetDefault("UPLOADS_PATH", "uploads")
	v.SetDefault("UPLOADS_CAROUSEL_PATH", "Carousel")
	v.SetDefault("UPLOADS_TMP_DIR", "/tmp/uploads")
	v.SetDefault("UPLOADS_MAX_FILE_SIZE", 15*1024*1024)

	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_SESSION_SECRET", "dev_session_secret")
	v.SetDefault("ADMIN_SESSION_TTL", "12h")
	v.SetDefault("ADMIN_COOKIE_NAME", "adminAuth")
	v.SetDefault("ADMIN_COOKIE_SECURE", false)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_CACHE_TTL", "5m")

	v.SetDefault("CLEANUP_WORKERS", 1)
	v.SetDefault("CLEANUP_MAX_RETRIES", 3)
	v.SetDefault("CLEANUP_RETRY_DELAY", "2s")

	v.SetDefault("ENABLE_EXPORTS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
