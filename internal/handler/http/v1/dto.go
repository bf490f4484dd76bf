package v1

import (
	"time"

	"github.com/google/uuid"
)

// StrategyRequest DTO для генерации стратегии
// @Description DTO для генерации стратегии
type StrategyRequest struct {
	Mission string `json:"mission" validate:"required,max=4000"`
}

// StrategyResponse DTO для ответа со стратегией
// @Description DTO для ответа со стратегией
type StrategyResponse struct {
	Strategy string `json:"strategy"`
}

// EncodeRequest DTO для кодирования текста в Морзе
// @Description DTO для кодирования текста в Морзе
type EncodeRequest struct {
	Text string `json:"text" validate:"max=4096"`
}

// DecodeRequest DTO для декодирования кода Морзе
// @Description DTO для декодирования кода Морзе
type DecodeRequest struct {
	Code string `json:"code" validate:"max=32768"`
}

// FlashRequest DTO с яркостью кадров камеры
// @Description DTO с яркостью кадров камеры
type FlashRequest struct {
	Samples []int `json:"samples" validate:"max=100000,dive,min=0,max=255"`
}

// MorseResponse DTO для ответа с текстом и кодом Морзе
// @Description DTO для ответа с текстом и кодом Морзе
type MorseResponse struct {
	Text string `json:"text"`
	Code string `json:"code"`
}

// GeofenceCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type GeofenceCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// GeofenceCheckResponse DTO для ответа на проверку координат
// @Description DTO для ответа на проверку координат
type GeofenceCheckResponse struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance_km"`
	RadiusKm   float64   `json:"radius_km"`
	Within     bool      `json:"within"`
	CheckedAt  time.Time `json:"checked_at"`
}

// SecureMessageRequest DTO для отправки защищенного сообщения
// @Description DTO для отправки защищенного сообщения
type SecureMessageRequest struct {
	Sender    string   `json:"sender" validate:"required,min=2,max=64"`
	Body      string   `json:"body" validate:"required,max=4096"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// SecureMessageResponse DTO для ответа на отправку сообщения
// @Description DTO для ответа на отправку сообщения
type SecureMessageResponse struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Sender     string     `json:"sender"`
	Status     string     `json:"status"`
	DistanceKm float64    `json:"distance_km"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SystemInfoResponse DTO с параметрами геозоны и подключенными сервисами
// @Description DTO с параметрами геозоны и подключенными сервисами
type SystemInfoResponse struct {
	Name              string  `json:"name"`
	ReferenceLat      float64 `json:"reference_latitude"`
	ReferenceLon      float64 `json:"reference_longitude"`
	RadiusKm          float64 `json:"radius_km"`
	StrategyEnabled   bool    `json:"strategy_enabled"`
	SpeechEnabled     bool    `json:"speech_enabled"`
	DispatchQueueMode string  `json:"dispatch_queue_mode"`
}
