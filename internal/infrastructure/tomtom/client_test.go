package tomtom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/config"
)

func testConfig(baseURL, apiKey string) *config.TrafficConfig {
	return &config.TrafficConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	}
}

func TestClient_FlowSegment(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/traffic/services/4/flowSegmentData/relative0/10/json", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.NotEmpty(t, r.URL.Query().Get("point"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"flowSegmentData":{"currentSpeed":37,"freeFlowSpeed":52,"confidence":0.95}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, "test-key"), logger)
		require.True(t, client.Configured())

		speeds, err := client.FlowSegment(context.Background(), 6.202, -75.577)
		require.NoError(t, err)
		assert.Equal(t, 37.0, speeds.CurrentSpeed)
		assert.Equal(t, 52.0, speeds.FreeFlowSpeed)
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"invalid key"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, "bad-key"), logger)

		_, err := client.FlowSegment(context.Background(), 6.202, -75.577)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, "test-key"), logger)

		_, err := client.FlowSegment(context.Background(), 6.202, -75.577)
		assert.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL, "test-key"), logger)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.FlowSegment(ctx, 6.202, -75.577)
		assert.Error(t, err)
	})

	t.Run("unconfigured client refuses to fetch", func(t *testing.T) {
		client := NewClient(testConfig("http://example.invalid", ""), logger)

		assert.False(t, client.Configured())
		_, err := client.FlowSegment(context.Background(), 6.202, -75.577)
		assert.Error(t, err)
	})
}
