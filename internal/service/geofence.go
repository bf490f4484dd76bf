package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tacticax/internal/dispatch"
	"github.com/shenikar/tacticax/internal/geofence"
	"github.com/shenikar/tacticax/internal/models"
	"github.com/shenikar/tacticax/internal/morse"
	"github.com/shenikar/tacticax/internal/observability"
	"github.com/sirupsen/logrus"
)

type geofenceService struct {
	fence     geofence.Fence
	publisher dispatch.Publisher
	logger    *logrus.Logger
	metrics   *observability.Collector
	now       func() time.Time
}

func NewGeofenceService(fence geofence.Fence, publisher dispatch.Publisher, logger *logrus.Logger, metrics *observability.Collector) GeofenceService {
	return &geofenceService{
		fence:     fence,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Check проверяет, находится ли точка внутри геозоны
func (s *geofenceService) Check(_ context.Context, lat, lon float64) *models.GeofenceCheck {
	p := geofence.Coordinate{Latitude: lat, Longitude: lon}
	within := s.fence.Contains(p)
	s.metrics.IncGeofenceCheck(within)

	return &models.GeofenceCheck{
		Latitude:   lat,
		Longitude:  lon,
		DistanceKm: s.fence.Distance(p),
		RadiusKm:   s.fence.RadiusKm,
		Within:     within,
		CheckedAt:  s.now().UTC(),
	}
}

// SendSecureMessage отправляет сообщение, если отправитель внутри геозоны.
// Снаружи сообщение уничтожается: тело стирается, в очередь ничего не попадает.
func (s *geofenceService) SendSecureMessage(ctx context.Context, msg *models.SecureMessage) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "SendSecureMessage",
		"sender":  msg.Sender,
	})
	log.Info("Attempting to send secure message")

	p := geofence.Coordinate{Latitude: msg.Latitude, Longitude: msg.Longitude}
	msg.DistanceKm = s.fence.Distance(p)
	msg.CreatedAt = s.now().UTC()

	if !s.fence.Contains(p) {
		msg.Body = ""
		msg.Status = models.MessageStatusDestroyed
		s.metrics.IncSecureMessage(string(msg.Status))
		log.WithField("distance_km", msg.DistanceKm).Warn("Sender outside geofence, message self-destructed")
		return nil
	}

	msg.ID = uuid.New()
	event := dispatch.Event{
		MessageID: msg.ID,
		Sender:    msg.Sender,
		Body:      msg.Body,
		Morse:     morse.Encode(msg.Body),
		Latitude:  msg.Latitude,
		Longitude: msg.Longitude,
		Timestamp: msg.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish secure message")
		return fmt.Errorf("service: could not dispatch secure message: %w", err)
	}

	msg.Status = models.MessageStatusSent
	s.metrics.IncSecureMessage(string(msg.Status))
	log.WithField("message_id", msg.ID).Info("Secure message sent successfully")
	return nil
}
