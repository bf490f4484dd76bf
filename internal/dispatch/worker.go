package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tacticax/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-TacticaX-Signature"
	popTimeout      = time.Second
)

// Worker - структура для извлечения сообщений из очереди и их доставки
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.DispatchTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; останавливается по отмене ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dispatch worker.")
				return
			default:
			}

			if _, err := w.ProcessNext(ctx, popTimeout); err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to process dispatch queue")
				w.sleep(ctx, w.cfg.DispatchBaseDelay)
			}
		}
	}()
}

// ProcessNext ждет одно событие не дольше timeout и доставляет его.
// Возвращает false, если очередь пуста.
func (w *Worker) ProcessNext(ctx context.Context, timeout time.Duration) (bool, error) {
	// BRPOP - блокирующее извлечение из правой части списка
	result, err := w.redisClient.BRPop(ctx, timeout, queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to pop dispatch event from Redis: %w", err)
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal dispatch event from Redis")
		return true, nil
	}

	w.deliver(ctx, event, payload)
	return true, nil
}

func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) bool {
	log := w.logger.WithField("message_id", event.MessageID).WithField("sender", event.Sender)
	log.Debug("Delivering secure message...")

	if w.cfg.DispatchURL == "" {
		log.Warn("Dispatch URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.DispatchMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.DispatchBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Secure message delivered successfully.")
			return true
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to deliver secure message. Retries left: %d", maxRetries-1-i)
		} else {
			log.Warnf("Delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
		}

		if i < maxRetries-1 {
			if !w.sleep(ctx, delay) {
				return false
			}
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver secure message after %d attempts.", maxRetries)
	return false
}

func (w *Worker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.DispatchURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если DISPATCH_SECRET задан
	if w.cfg.DispatchSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.DispatchSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
