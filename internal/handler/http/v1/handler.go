package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/tacticax/internal/config"
	"github.com/shenikar/tacticax/internal/models"
	"github.com/shenikar/tacticax/internal/service"
	"github.com/sirupsen/logrus"
)

const maxAudioBytes = 25 << 20

type Handler struct {
	strategyService service.StrategyService
	commsService    service.CommsService
	geofenceService service.GeofenceService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	strategyService service.StrategyService,
	commsService service.CommsService,
	geofenceService service.GeofenceService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		strategyService: strategyService,
		commsService:    commsService,
		geofenceService: geofenceService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bindAndValidate читает JSON тело и проверяет его; при ошибке ответ уже отправлен
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Generate a mission strategy
// @Description Generate a tactical strategy for the given mission details using the AI text service.
// @Tags Missions
// @Accept json
// @Produce json
// @Param mission body StrategyRequest true "Mission details"
// @Success 200 {object} StrategyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Strategy service unavailable"
// @Failure 503 {object} map[string]string "Strategy service not configured"
// @Router /missions/strategy [post]
func (h *Handler) generateStrategy(c *gin.Context) {
	var input StrategyRequest
	log := h.logger.WithField("method", "generateStrategy")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	strategy, err := h.strategyService.GenerateStrategy(c.Request.Context(), input.Mission)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "strategy service not configured"})
			return
		}
		log.WithError(err).Error("Failed to generate strategy in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "strategy service unavailable"})
		return
	}

	c.JSON(http.StatusOK, StrategyResponse{Strategy: strategy})
}

// @Summary Get the Morse code alphabet
// @Description Get the full symbol to code table.
// @Tags Morse
// @Produce json
// @Success 200 {object} map[string]string
// @Router /morse/alphabet [get]
func (h *Handler) getAlphabet(c *gin.Context) {
	c.JSON(http.StatusOK, h.commsService.Alphabet(c.Request.Context()))
}

// @Summary Encode text to Morse code
// @Description Unsupported characters are dropped; spaces become "/".
// @Tags Morse
// @Accept json
// @Produce json
// @Param text body EncodeRequest true "Text to encode"
// @Success 200 {object} MorseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /morse/encode [post]
func (h *Handler) encodeMorse(c *gin.Context) {
	var input EncodeRequest
	log := h.logger.WithField("method", "encodeMorse")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	code := h.commsService.Encode(c.Request.Context(), input.Text)
	c.JSON(http.StatusOK, MorseResponse{Text: input.Text, Code: code})
}

// @Summary Decode Morse code to text
// @Description Tokens are separated by single spaces; unknown tokens are dropped.
// @Tags Morse
// @Accept json
// @Produce json
// @Param code body DecodeRequest true "Code to decode"
// @Success 200 {object} MorseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /morse/decode [post]
func (h *Handler) decodeMorse(c *gin.Context) {
	var input DecodeRequest
	log := h.logger.WithField("method", "decodeMorse")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	text := h.commsService.Decode(c.Request.Context(), input.Code)
	c.JSON(http.StatusOK, MorseResponse{Text: text, Code: input.Code})
}

// @Summary Transcribe speech and encode it to Morse code
// @Description Upload an audio file; the recognised text and its Morse code are returned.
// @Tags Morse
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio recording"
// @Success 200 {object} MorseResponse
// @Failure 400 {object} map[string]string "Missing or unreadable audio"
// @Failure 422 {object} map[string]string "Speech not understood"
// @Router /morse/transcribe [post]
func (h *Handler) transcribeMorse(c *gin.Context) {
	log := h.logger.WithField("method", "transcribeMorse")

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		log.WithError(err).Warn("Audio file missing")
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file required"})
		return
	}
	if fileHeader.Size > maxAudioBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Warn("Failed to open audio file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read audio file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}

	text, code, err := h.commsService.Transcribe(c.Request.Context(), audio)
	if err != nil {
		log.WithError(err).Warn("Failed to transcribe audio in service")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": text})
		return
	}

	c.JSON(http.StatusOK, MorseResponse{Text: text, Code: code})
}

// @Summary Decode camera light flashes
// @Description Decode a sequence of per-frame brightness samples (0-255) into Morse code and text.
// @Tags Morse
// @Accept json
// @Produce json
// @Param frames body FlashRequest true "Brightness samples"
// @Success 200 {object} MorseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /morse/flashes [post]
func (h *Handler) decodeFlashes(c *gin.Context) {
	var input FlashRequest
	log := h.logger.WithField("method", "decodeFlashes")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	code, text := h.commsService.DecodeFlashes(c.Request.Context(), SamplesToFrames(input.Samples))
	c.JSON(http.StatusOK, MorseResponse{Text: text, Code: code})
}

// @Summary Check a position against the geofence
// @Description Compute the geodesic distance to the reference point and report whether it is strictly inside the radius.
// @Tags Geofence
// @Accept json
// @Produce json
// @Param position body GeofenceCheckRequest true "Position"
// @Success 200 {object} GeofenceCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /geofence/check [post]
func (h *Handler) checkGeofence(c *gin.Context) {
	var input GeofenceCheckRequest
	log := h.logger.WithField("method", "checkGeofence")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	check := h.geofenceService.Check(c.Request.Context(), *input.Latitude, *input.Longitude)
	c.JSON(http.StatusOK, ModelToGeofenceCheckResponse(check))
}

// @Summary Send a geofenced secure message
// @Description The message is dispatched only if the sender is inside the geofence; otherwise it self-destructs.
// @Tags Geofence
// @Accept json
// @Produce json
// @Param message body SecureMessageRequest true "Secure message"
// @Success 201 {object} SecureMessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} SecureMessageResponse "Sender outside geofence, message destroyed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofence/messages [post]
func (h *Handler) sendSecureMessage(c *gin.Context) {
	var input SecureMessageRequest
	log := h.logger.WithField("method", "sendSecureMessage")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToSecureMessageModel(input)
	if err := h.geofenceService.SendSecureMessage(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to send secure message in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if model.Status == models.MessageStatusDestroyed {
		c.JSON(http.StatusForbidden, ModelToSecureMessageResponse(model))
		return
	}
	c.JSON(http.StatusCreated, ModelToSecureMessageResponse(model))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get service information
// @Description Geofence parameters and which external collaborators are configured.
// @Tags System
// @Produce json
// @Success 200 {object} SystemInfoResponse
// @Router /system/info [get]
func (h *Handler) systemInfo(c *gin.Context) {
	queueMode := "log"
	if h.cfg.RedisAddr != "" {
		queueMode = "redis"
	}
	c.JSON(http.StatusOK, SystemInfoResponse{
		Name:              "TacticaX",
		ReferenceLat:      h.cfg.GeofenceLat,
		ReferenceLon:      h.cfg.GeofenceLon,
		RadiusKm:          h.cfg.GeofenceRadiusKm,
		StrategyEnabled:   h.cfg.GeminiAPIKey != "",
		SpeechEnabled:     h.cfg.OpenAIAPIKey != "",
		DispatchQueueMode: queueMode,
	})
}
