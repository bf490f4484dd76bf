package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/tacticax/pkg/retry"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-pro-latest"
)

// Client - клиент генерации текста Gemini (метод generateContent)
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient создает клиент Gemini; пустые model и baseURL заменяются значениями по умолчанию
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.DefaultConfig(),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate отправляет prompt и возвращает сгенерированный текст.
// Пустая строка без ошибки означает, что модель не вернула текст.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: 2048,
			Temperature:     0.7,
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	var result generateResponse
	err = retry.Do(ctx, c.retryCfg, func() error {
		url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(fmt.Errorf("gemini: creating request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("gemini: sending request: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("gemini: reading response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			apiErr := fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			if retry.IsRetryableHTTPStatus(resp.StatusCode) {
				return apiErr
			}
			return retry.Permanent(apiErr)
		}

		if err := json.Unmarshal(respBody, &result); err != nil {
			return retry.Permanent(fmt.Errorf("gemini: decoding response: %w", err))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("gemini: %s", result.Error.Message)
	}

	var sb strings.Builder
	if len(result.Candidates) > 0 {
		for _, p := range result.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
