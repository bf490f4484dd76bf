package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/tacticax/internal/observability"
	"github.com/sirupsen/logrus"
)

// NoStrategyAvailable возвращается, когда модель не вернула текст
const NoStrategyAvailable = "No strategy available."

type strategyService struct {
	generator Generator
	logger    *logrus.Logger
	metrics   *observability.Collector
}

func NewStrategyService(generator Generator, logger *logrus.Logger, metrics *observability.Collector) StrategyService {
	return &strategyService{
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

// BuildStrategyPrompt формирует запрос к модели по описанию миссии
func BuildStrategyPrompt(mission string) string {
	return fmt.Sprintf("Develop a tactical military strategy based on the following mission details: %s. "+
		"Include troop movement, risk assessment, and strategic execution.", mission)
}

// GenerateStrategy генерирует стратегию для миссии
func (s *strategyService) GenerateStrategy(ctx context.Context, mission string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "strategy",
		"method":      "GenerateStrategy",
		"mission_len": len(mission),
	})
	log.Info("Requesting mission strategy")

	start := time.Now()
	text, err := s.generator.Generate(ctx, BuildStrategyPrompt(strings.TrimSpace(mission)))
	s.metrics.ObserveUpstream("gemini", time.Since(start), err)
	if err != nil {
		log.WithError(err).Error("Failed to generate strategy")
		return "", fmt.Errorf("service: could not generate strategy: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		log.Warn("Generator returned no text")
		return NoStrategyAvailable, nil
	}

	log.WithField("strategy_len", len(text)).Info("Strategy generated successfully")
	return text, nil
}
