package service

import (
	"context"
	"errors"

	"github.com/shenikar/tacticax/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// ErrNotConfigured возвращается внешними клиентами, для которых не задан API ключ
var ErrNotConfigured = errors.New("external service not configured")

// Generator определяет контракт сервиса генерации текста
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Transcriber определяет контракт сервиса распознавания речи
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// StrategyService определяет контракт планирования миссий
type StrategyService interface {
	GenerateStrategy(ctx context.Context, mission string) (string, error)
}

// CommsService определяет контракт для перевода сообщений в код Морзе и обратно
type CommsService interface {
	Encode(ctx context.Context, text string) string
	Decode(ctx context.Context, code string) string
	Transcribe(ctx context.Context, audio []byte) (text string, code string, err error)
	DecodeFlashes(ctx context.Context, samples []uint8) (code string, text string)
	Alphabet(ctx context.Context) map[string]string
}

// GeofenceService определяет контракт проверки геозоны и защищенных сообщений
type GeofenceService interface {
	Check(ctx context.Context, lat, lon float64) *models.GeofenceCheck
	SendSecureMessage(ctx context.Context, msg *models.SecureMessage) error
}

// NoopGenerator используется, когда ключ Gemini не задан
type NoopGenerator struct{}

func (NoopGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// NoopTranscriber используется, когда ключ OpenAI не задан
type NoopTranscriber struct{}

func (NoopTranscriber) Transcribe(context.Context, []byte) (string, error) {
	return "", ErrNotConfigured
}
