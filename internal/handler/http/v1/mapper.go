package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/tacticax/internal/models"
)

const (
	messageSent      = "Secure message sent successfully"
	messageDestroyed = "Access denied: message self-destructed outside geofence"
)

// DTOToSecureMessageModel преобразует DTO запроса в доменную модель
func DTOToSecureMessageModel(dto SecureMessageRequest) *models.SecureMessage {
	return &models.SecureMessage{
		Sender:    dto.Sender,
		Body:      dto.Body,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

// ModelToSecureMessageResponse преобразует доменную модель в DTO для ответа
func ModelToSecureMessageResponse(model *models.SecureMessage) *SecureMessageResponse {
	resp := &SecureMessageResponse{
		Sender:     model.Sender,
		Status:     string(model.Status),
		DistanceKm: model.DistanceKm,
		CreatedAt:  model.CreatedAt,
	}
	if model.ID != uuid.Nil {
		id := model.ID
		resp.ID = &id
	}
	if model.Status == models.MessageStatusSent {
		resp.Message = messageSent
	} else {
		resp.Message = messageDestroyed
	}
	return resp
}

// ModelToGeofenceCheckResponse преобразует результат проверки в DTO для ответа
func ModelToGeofenceCheckResponse(model *models.GeofenceCheck) *GeofenceCheckResponse {
	return &GeofenceCheckResponse{
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		DistanceKm: model.DistanceKm,
		RadiusKm:   model.RadiusKm,
		Within:     model.Within,
		CheckedAt:  model.CheckedAt,
	}
}

// SamplesToFrames преобразует яркости из запроса в кадры
func SamplesToFrames(samples []int) []uint8 {
	frames := make([]uint8, len(samples))
	for i, s := range samples {
		frames[i] = uint8(s)
	}
	return frames
}
