package tomtom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/config"
	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
)

// flowSegmentPath is the TomTom Traffic Flow endpoint for the road segment
// nearest to a point. The free tier allows roughly 2500 requests per day,
// which is why callers cache aggressively.
const flowSegmentPath = "/traffic/services/4/flowSegmentData/relative0/10/json"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a TomTom Traffic Flow API client.
func NewClient(cfg *config.TrafficConfig, logger *zap.Logger) repository.TrafficProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

// flowSegmentResponse mirrors the provider's JSON envelope.
type flowSegmentResponse struct {
	FlowSegmentData struct {
		CurrentSpeed  float64  `json:"currentSpeed"`
		FreeFlowSpeed float64  `json:"freeFlowSpeed"`
		Confidence    *float64 `json:"confidence"`
	} `json:"flowSegmentData"`
}

// FlowSegment fetches live speeds for the road segment nearest to the
// given coordinates.
func (c *client) FlowSegment(ctx context.Context, lat, lng float64) (*domain.SpeedPair, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("tomtom API key not configured")
	}

	url := fmt.Sprintf("%s%s?key=%s&point=%f,%f", c.baseURL, flowSegmentPath, c.apiKey, lat, lng)

	c.logger.Debug("Calling TomTom Flow Segment API",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("TomTom request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("TomTom API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("tomtom API error: status %d", resp.StatusCode)
	}

	var flowResp flowSegmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&flowResp); err != nil {
		c.logger.Warn("Failed to decode TomTom response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("TomTom Flow Segment API call successful",
		zap.Float64("current_speed", flowResp.FlowSegmentData.CurrentSpeed),
		zap.Float64("free_flow_speed", flowResp.FlowSegmentData.FreeFlowSpeed),
		zap.Duration("elapsed", time.Since(start)))

	return &domain.SpeedPair{
		CurrentSpeed:  flowResp.FlowSegmentData.CurrentSpeed,
		FreeFlowSpeed: flowResp.FlowSegmentData.FreeFlowSpeed,
	}, nil
}
