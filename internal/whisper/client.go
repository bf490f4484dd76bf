package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/tacticax/pkg/retry"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Client - клиент распознавания речи OpenAI Whisper
type Client struct {
	apiKey     string
	language   string
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

func NewClient(apiKey, language, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		language:   language,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.DefaultConfig(),
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe отправляет аудио и возвращает распознанный текст
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("whisper: empty audio")
	}

	var result transcriptionResponse
	err := retry.Do(ctx, c.retryCfg, func() error {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)

		filePart, err := writer.CreateFormFile("file", "audio.wav")
		if err != nil {
			return retry.Permanent(fmt.Errorf("whisper: creating form file: %w", err))
		}
		if _, err := filePart.Write(audio); err != nil {
			return retry.Permanent(fmt.Errorf("whisper: writing audio: %w", err))
		}
		if err := writer.WriteField("model", "whisper-1"); err != nil {
			return retry.Permanent(fmt.Errorf("whisper: writing model field: %w", err))
		}
		if c.language != "" {
			if err := writer.WriteField("language", c.language); err != nil {
				return retry.Permanent(fmt.Errorf("whisper: writing language field: %w", err))
			}
		}
		if err := writer.Close(); err != nil {
			return retry.Permanent(fmt.Errorf("whisper: closing writer: %w", err))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", body)
		if err != nil {
			return retry.Permanent(fmt.Errorf("whisper: creating request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("whisper: sending request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			apiErr := fmt.Errorf("whisper: API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			if retry.IsRetryableHTTPStatus(resp.StatusCode) {
				return apiErr
			}
			return retry.Permanent(apiErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return retry.Permanent(fmt.Errorf("whisper: decoding response: %w", err))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.Text), nil
}
