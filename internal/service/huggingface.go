package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"urbandash/internal/config"
	"urbandash/internal/metrics"
)

// HuggingFaceClient handles HuggingFace Inference API interactions
type HuggingFaceClient struct {
	config     *config.HuggingFaceConfig
	httpClient *http.Client
}

// NewHuggingFaceClient creates a new HuggingFace Inference API client
func NewHuggingFaceClient(cfg *config.HuggingFaceConfig) *HuggingFaceClient {
	return &HuggingFaceClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// InferenceRequest represents a text generation request
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

// InferenceResponse represents a single generated completion
type InferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Generate sends the prompt to the inference endpoint and returns the
// trimmed completion text
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	metrics.InferenceRequestsTotal.Inc()

	text, err := c.generate(ctx, prompt)
	metrics.InferenceDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.InferenceFailTotal.Inc()
		return "", err
	}

	return text, nil
}

func (c *HuggingFaceClient) generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(InferenceRequest{Inputs: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.APIURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result []InferenceResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result) == 0 {
		return "", fmt.Errorf("no completion in response")
	}

	return strings.TrimSpace(result[0].GeneratedText), nil
}
