package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/tacticax/internal/config"
	"github.com/shenikar/tacticax/internal/models"
	"github.com/shenikar/tacticax/internal/service"
	"github.com/shenikar/tacticax/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	strategy *mocks.MockStrategyService
	comms    *mocks.MockCommsService
	geofence *mocks.MockGeofenceService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		strategy: mocks.NewMockStrategyService(ctrl),
		comms:    mocks.NewMockCommsService(ctrl),
		geofence: mocks.NewMockGeofenceService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GeofenceLat:      37.7749,
		GeofenceLon:      -122.4194,
		GeofenceRadiusKm: 5,
		GeminiAPIKey:     "gemini-key",
	}

	handler := NewHandler(m.strategy, m.comms, m.geofence, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func float(v float64) *float64 { return &v }

func TestGenerateStrategy_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.strategy.EXPECT().GenerateStrategy(gomock.Any(), "take the hill").Return("Flank left.", nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/missions/strategy", jsonBody(t, StrategyRequest{Mission: "take the hill"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StrategyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Flank left.", resp.Strategy)
}

func TestGenerateStrategy_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.strategy.EXPECT().GenerateStrategy(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/missions/strategy", jsonBody(t, StrategyRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Mission' failed on the 'required' tag")
}

func TestGenerateStrategy_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.strategy.EXPECT().GenerateStrategy(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/missions/strategy", bytes.NewBufferString(`{"mission": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestGenerateStrategy_UpstreamError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.strategy.EXPECT().GenerateStrategy(gomock.Any(), gomock.Any()).Return("", errors.New("gemini down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/missions/strategy", jsonBody(t, StrategyRequest{Mission: "x"}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "strategy service unavailable")
}

func TestGenerateStrategy_NotConfigured(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.strategy.EXPECT().GenerateStrategy(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("service: could not generate strategy: %w", service.ErrNotConfigured)).Times(1)

	w := makeRequest(router, "POST", "/api/v1/missions/strategy", jsonBody(t, StrategyRequest{Mission: "x"}))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestGetAlphabet(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Alphabet(gomock.Any()).Return(map[string]string{"A": ".-"}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/morse/alphabet", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"A":".-"}`, w.Body.String())
}

func TestEncodeMorse_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Encode(gomock.Any(), "SOS").Return("... --- ...").Times(1)

	w := makeRequest(router, "POST", "/api/v1/morse/encode", jsonBody(t, EncodeRequest{Text: "SOS"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MorseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "... --- ...", resp.Code)
	assert.Equal(t, "SOS", resp.Text)
}

func TestEncodeMorse_EmptyText(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Encode(gomock.Any(), "").Return("").Times(1)

	w := makeRequest(router, "POST", "/api/v1/morse/encode", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"","code":""}`, w.Body.String())
}

func TestDecodeMorse_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Decode(gomock.Any(), "... --- ...").Return("SOS").Times(1)

	w := makeRequest(router, "POST", "/api/v1/morse/decode", jsonBody(t, DecodeRequest{Code: "... --- ..."}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MorseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SOS", resp.Text)
}

func newAudioRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "clip.wav")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/morse/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscribeMorse_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Transcribe(gomock.Any(), []byte("RIFF")).Return("SOS", "... --- ...", nil).Times(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newAudioRequest(t, "audio", []byte("RIFF")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"SOS","code":"... --- ..."}`, w.Body.String())
}

func TestTranscribeMorse_NotUnderstood(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Transcribe(gomock.Any(), gomock.Any()).
		Return(service.SpeechNotUnderstood, "", errors.New("noise")).Times(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newAudioRequest(t, "audio", []byte("static")))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), service.SpeechNotUnderstood)
}

func TestTranscribeMorse_MissingFile(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Times(0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newAudioRequest(t, "not-audio", []byte("RIFF")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "audio file required")
}

func TestDecodeFlashes_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().DecodeFlashes(gomock.Any(), []uint8{0, 255, 0}).Return(".", "E").Times(1)

	w := makeRequest(router, "POST", "/api/v1/morse/flashes", jsonBody(t, FlashRequest{Samples: []int{0, 255, 0}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"E","code":"."}`, w.Body.String())
}

func TestDecodeFlashes_OutOfRangeSample(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.comms.EXPECT().DecodeFlashes(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/morse/flashes", jsonBody(t, FlashRequest{Samples: []int{0, 300}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'max' tag")
}

func TestCheckGeofence_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	check := &models.GeofenceCheck{
		Latitude:   37.7749,
		Longitude:  -122.4194,
		DistanceKm: 0,
		RadiusKm:   5,
		Within:     true,
		CheckedAt:  time.Now().UTC(),
	}

	m.geofence.EXPECT().Check(gomock.Any(), 37.7749, -122.4194).Return(check).Times(1)

	w := makeRequest(router, "POST", "/api/v1/geofence/check",
		jsonBody(t, GeofenceCheckRequest{Latitude: float(37.7749), Longitude: float(-122.4194)}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeofenceCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Within)
	assert.Equal(t, 5.0, resp.RadiusKm)
}

func TestCheckGeofence_ZeroCoordinatesAreValid(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().Check(gomock.Any(), 0.0, 0.0).Return(&models.GeofenceCheck{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/geofence/check", bytes.NewBufferString(`{"latitude":0,"longitude":0}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckGeofence_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/geofence/check", bytes.NewBufferString(`{"latitude":95,"longitude":10}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'latitude' tag")
}

func TestCheckGeofence_MissingLongitude(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/geofence/check", bytes.NewBufferString(`{"latitude":10}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Longitude' failed on the 'required' tag")
}

func TestSendSecureMessage_Sent(t *testing.T) {
	_, m, router := newTestHandler(t)
	messageID := uuid.New()

	m.geofence.EXPECT().
		SendSecureMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.SecureMessage) error {
			assert.Equal(t, "alpha-1", msg.Sender)
			msg.ID = messageID
			msg.Status = models.MessageStatusSent
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/geofence/messages", jsonBody(t, SecureMessageRequest{
		Sender:    "alpha-1",
		Body:      "move at dawn",
		Latitude:  float(37.7749),
		Longitude: float(-122.4194),
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SecureMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ID)
	assert.Equal(t, messageID, *resp.ID)
	assert.Equal(t, "sent", resp.Status)
	assert.Equal(t, messageSent, resp.Message)
}

func TestSendSecureMessage_Destroyed(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().
		SendSecureMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.SecureMessage) error {
			msg.Body = ""
			msg.Status = models.MessageStatusDestroyed
			msg.DistanceKm = 559
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/geofence/messages", jsonBody(t, SecureMessageRequest{
		Sender:    "alpha-1",
		Body:      "move at dawn",
		Latitude:  float(34.0522),
		Longitude: float(-118.2437),
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp SecureMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.ID)
	assert.Equal(t, "destroyed", resp.Status)
	assert.Equal(t, messageDestroyed, resp.Message)
}

func TestSendSecureMessage_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().SendSecureMessage(gomock.Any(), gomock.Any()).Return(errors.New("queue down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/geofence/messages", jsonBody(t, SecureMessageRequest{
		Sender:    "alpha-1",
		Body:      "x",
		Latitude:  float(37.7749),
		Longitude: float(-122.4194),
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSendSecureMessage_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geofence.EXPECT().SendSecureMessage(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/geofence/messages", jsonBody(t, SecureMessageRequest{
		Body:      "x",
		Latitude:  float(37.7749),
		Longitude: float(-122.4194),
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Sender' failed on the 'required' tag")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSystemInfo(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/info", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SystemInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5.0, resp.RadiusKm)
	assert.True(t, resp.StrategyEnabled)
	assert.False(t, resp.SpeechEnabled)
	assert.Equal(t, "log", resp.DispatchQueueMode)
}
