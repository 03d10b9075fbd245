package parkingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
)

// Client calls the parking API's occupancy-adjust endpoint. It is the
// tracker's remote side channel: callers treat failures as droppable
// telemetry, not as a source of truth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) repository.OccupancyClient {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// AdjustCarOccupancy posts a signed car-occupancy delta for a zone. The
// server clamps to [0, capacity].
func (c *Client) AdjustCarOccupancy(ctx context.Context, zoneID string, delta int) error {
	body, err := json.Marshal(adjustRequest{Delta: delta})
	if err != nil {
		return fmt.Errorf("marshal adjust request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/zones/%s/occupancy/adjust", c.baseURL, zoneID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create adjust request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute adjust request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Debug("Occupancy adjust rejected",
			zap.String("zone_id", zoneID),
			zap.Int("delta", delta),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("occupancy adjust: status %d", resp.StatusCode)
	}

	return nil
}
