package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// AI Config
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-pro-latest"`
	GeminiURL       string        `env:"GEMINI_URL"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	WhisperURL      string        `env:"WHISPER_URL"`
	WhisperLanguage string        `env:"WHISPER_LANGUAGE" envDefault:"en"`
	AITimeout       time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Dispatch Config
	DispatchURL        string        `env:"DISPATCH_URL"`
	DispatchSecret     string        `env:"DISPATCH_SECRET"`
	DispatchTimeout    time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"5s"`
	DispatchMaxRetries int           `env:"DISPATCH_MAX_RETRIES" envDefault:"3"`
	DispatchBaseDelay  time.Duration `env:"DISPATCH_BASE_DELAY" envDefault:"1s"`

	// Geofence Config
	GeofenceLat      float64 `env:"GEOFENCE_LAT" envDefault:"37.7749"`
	GeofenceLon      float64 `env:"GEOFENCE_LON" envDefault:"-122.4194"`
	GeofenceRadiusKm float64 `env:"GEOFENCE_RADIUS_KM" envDefault:"5"`

	// Flash decoder Config
	FlashThreshold  int `env:"FLASH_THRESHOLD" envDefault:"128"`
	FlashUnitFrames int `env:"FLASH_UNIT_FRAMES" envDefault:"2"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		GeminiURL:          os.Getenv("GEMINI_URL"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		WhisperURL:         os.Getenv("WHISPER_URL"),
		WhisperLanguage:    getEnv("WHISPER_LANGUAGE", "en"),
		AITimeout:          getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		DispatchURL:        os.Getenv("DISPATCH_URL"),
		DispatchSecret:     os.Getenv("DISPATCH_SECRET"),
		DispatchTimeout:    getEnvAsDuration("DISPATCH_TIMEOUT", 5*time.Second),
		DispatchMaxRetries: getEnvAsInt("DISPATCH_MAX_RETRIES", 3),
		DispatchBaseDelay:  getEnvAsDuration("DISPATCH_BASE_DELAY", time.Second),
		GeofenceLat:        getEnvAsFloat("GEOFENCE_LAT", 37.7749),
		GeofenceLon:        getEnvAsFloat("GEOFENCE_LON", -122.4194),
		GeofenceRadiusKm:   getEnvAsFloat("GEOFENCE_RADIUS_KM", 5),
		FlashThreshold:     getEnvAsInt("FLASH_THRESHOLD", 128),
		FlashUnitFrames:    getEnvAsInt("FLASH_UNIT_FRAMES", 2),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.GeofenceLat < -90 || c.GeofenceLat > 90 {
		return fmt.Errorf("GEOFENCE_LAT must be within [-90, 90], got %v", c.GeofenceLat)
	}
	if c.GeofenceLon < -180 || c.GeofenceLon > 180 {
		return fmt.Errorf("GEOFENCE_LON must be within [-180, 180], got %v", c.GeofenceLon)
	}
	if c.GeofenceRadiusKm <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_KM must be positive, got %v", c.GeofenceRadiusKm)
	}
	if c.FlashThreshold < 1 || c.FlashThreshold > 255 {
		return fmt.Errorf("FLASH_THRESHOLD must be within [1, 255], got %d", c.FlashThreshold)
	}
	return nil
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
