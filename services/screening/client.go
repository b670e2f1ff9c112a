// Package screening submits questionnaire feature sets to the external
// model service and stores the verdicts.
package screening

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"trackcare/models"
)

// Columns the questionnaire form may echo back but the model must never
// see: they encode the outcome itself.
var leakageColumns = []string{"screening_done", "screening_result"}

// ErrModelUnavailable wraps transport failures to the model service.
var ErrModelUnavailable = errors.New("model service unavailable")

// ModelClient asks the model service for a risk prediction.
type ModelClient interface {
	Predict(features map[string]interface{}) (*models.Prediction, error)
}

// HTTPModelClient calls the model service over HTTP with an API key header.
type HTTPModelClient struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPModelClient creates a client for the model service endpoint.
func NewHTTPModelClient(url, apiKey string) *HTTPModelClient {
	return &HTTPModelClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Predict posts the cleaned feature set and decodes the verdict.
func (c *HTTPModelClient) Predict(features map[string]interface{}) (*models.Prediction, error) {
	body, err := json.Marshal(StripLeakage(features))
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrModelUnavailable, resp.StatusCode, raw)
	}

	var prediction models.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return &prediction, nil
}

// StripLeakage removes outcome-encoding columns from a feature set without
// mutating the input.
func StripLeakage(features map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(features))
	for k, v := range features {
		cleaned[k] = v
	}
	for _, col := range leakageColumns {
		delete(cleaned, col)
	}
	return cleaned
}
