package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации консоли
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Сервис диспетчеризации
	CollaboratorURL     string        `env:"COLLABORATOR_URL"`
	StreamURL           string        `env:"STREAM_URL"`
	HTTPTimeout         time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	SignalPollInterval  time.Duration `env:"SIGNAL_POLL_INTERVAL" envDefault:"1s"`
	SnapshotConcurrency int           `env:"SNAPSHOT_CONCURRENCY" envDefault:"6"`
	AlertsVisible       int           `env:"ALERTS_VISIBLE" envDefault:"20"`

	// Redis Config, пустой адрес - реплики только пишутся в лог
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	HexSummaryTTL time.Duration `env:"HEX_SUMMARY_TTL" envDefault:"30s"`

	// Audio Config
	AudioEnabled        bool          `env:"AUDIO_ENABLED" envDefault:"false"`
	AudioPlayTimeout    time.Duration `env:"AUDIO_PLAY_TIMEOUT" envDefault:"30s"`
	AudioControllerGap  time.Duration `env:"AUDIO_CONTROLLER_GAP" envDefault:"2s"`
	AudioSuppressWindow time.Duration `env:"AUDIO_SUPPRESS_WINDOW" envDefault:"5s"`

	// API Keys для командных маршрутов; пусто - без аутентификации
	APIKeys []string `env:"API_KEYS"`

	IntakeLockPath string `env:"INTAKE_LOCK_PATH" envDefault:"/tmp/dispatch_intake.lock"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CollaboratorURL:     strings.TrimRight(os.Getenv("COLLABORATOR_URL"), "/"),
		StreamURL:           os.Getenv("STREAM_URL"),
		HTTPTimeout:         getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		SignalPollInterval:  getEnvAsDuration("SIGNAL_POLL_INTERVAL", time.Second),
		SnapshotConcurrency: getEnvAsInt("SNAPSHOT_CONCURRENCY", 6),
		AlertsVisible:       getEnvAsInt("ALERTS_VISIBLE", 20),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		HexSummaryTTL:       getEnvAsDuration("HEX_SUMMARY_TTL", 30*time.Second),
		AudioEnabled:        getEnvAsBool("AUDIO_ENABLED", false),
		AudioPlayTimeout:    getEnvAsDuration("AUDIO_PLAY_TIMEOUT", 30*time.Second),
		AudioControllerGap:  getEnvAsDuration("AUDIO_CONTROLLER_GAP", 2*time.Second),
		AudioSuppressWindow: getEnvAsDuration("AUDIO_SUPPRESS_WINDOW", 5*time.Second),
		APIKeys:             getEnvAsList("API_KEYS"),
		IntakeLockPath:      getEnv("INTAKE_LOCK_PATH", "/tmp/dispatch_intake.lock"),
	}

	if cfg.CollaboratorURL == "" {
		return nil, fmt.Errorf("COLLABORATOR_URL environment variable is required")
	}

	if cfg.StreamURL == "" {
		streamURL, err := deriveStreamURL(cfg.CollaboratorURL)
		if err != nil {
			return nil, err
		}
		cfg.StreamURL = streamURL
	}

	return cfg, nil
}

// deriveStreamURL строит адрес push-канала из адреса сервиса: http -> ws,
// https -> wss, путь /ws.
func deriveStreamURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("некорректный COLLABORATOR_URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("неподдерживаемая схема COLLABORATOR_URL: %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы пропускаются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
