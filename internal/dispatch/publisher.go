package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	queueKey = "secure_messages"
)

// Event - структура для данных доставляемого сообщения
type Event struct {
	MessageID uuid.UUID `json:"message_id"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	Morse     string    `json:"morse"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// Publisher - интерфейс для публикации сообщений на доставку
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH добавляет в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет событие в лог; используется, когда Redis не настроен
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.WithFields(logrus.Fields{
		"message_id": event.MessageID,
		"sender":     event.Sender,
	}).Info("Secure message dispatched (no queue configured)")
	return nil
}
