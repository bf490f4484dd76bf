package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/tacticax/internal/flash"
	"github.com/shenikar/tacticax/internal/morse"
	"github.com/shenikar/tacticax/internal/observability"
	"github.com/sirupsen/logrus"
)

// SpeechNotUnderstood возвращается вместо текста, если речь не распознана
const SpeechNotUnderstood = "Could not understand audio"

type commsService struct {
	transcriber Transcriber
	decoder     *flash.Decoder
	logger      *logrus.Logger
	metrics     *observability.Collector
}

func NewCommsService(transcriber Transcriber, decoder *flash.Decoder, logger *logrus.Logger, metrics *observability.Collector) CommsService {
	return &commsService{
		transcriber: transcriber,
		decoder:     decoder,
		logger:      logger,
		metrics:     metrics,
	}
}

// Encode переводит текст в код Морзе
func (s *commsService) Encode(_ context.Context, text string) string {
	s.metrics.IncMorse("encode")
	return morse.Encode(text)
}

// Decode переводит код Морзе в текст
func (s *commsService) Decode(_ context.Context, code string) string {
	s.metrics.IncMorse("decode")
	return morse.Decode(code)
}

// Transcribe распознает речь и кодирует ее в Морзе.
// При ошибке распознавания вместо текста возвращается SpeechNotUnderstood.
func (s *commsService) Transcribe(ctx context.Context, audio []byte) (string, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "comms",
		"method":      "Transcribe",
		"audio_bytes": len(audio),
	})
	log.Info("Transcribing audio")

	start := time.Now()
	text, err := s.transcriber.Transcribe(ctx, audio)
	s.metrics.ObserveUpstream("whisper", time.Since(start), err)
	if err != nil {
		log.WithError(err).Warn("Speech recognition failed")
		return SpeechNotUnderstood, "", fmt.Errorf("service: could not transcribe audio: %w", err)
	}

	s.metrics.IncMorse("speech")
	code := morse.Encode(text)
	log.WithField("text_len", len(text)).Info("Audio transcribed successfully")
	return text, code, nil
}

// DecodeFlashes переводит яркость кадров в код Морзе и текст
func (s *commsService) DecodeFlashes(_ context.Context, samples []uint8) (string, string) {
	s.metrics.IncMorse("flash")
	code := s.decoder.Tokens(samples)
	return code, morse.Decode(code)
}

// Alphabet возвращает таблицу кодов с символами в виде строк
func (s *commsService) Alphabet(_ context.Context) map[string]string {
	table := morse.Alphabet()
	out := make(map[string]string, len(table))
	for r, code := range table {
		out[string(r)] = code
	}
	return out
}
