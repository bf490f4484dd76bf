package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDestroyed MessageStatus = "destroyed"
)

// SecureMessage - сообщение, которое доставляется только изнутри геозоны
type SecureMessage struct {
	ID         uuid.UUID     `json:"id"`
	Sender     string        `json:"sender"`
	Body       string        `json:"body"`
	Latitude   float64       `json:"latitude"`
	Longitude  float64       `json:"longitude"`
	DistanceKm float64       `json:"distance_km"`
	Status     MessageStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
