package utils

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/validator"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSendError_AppError(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return SendError(c, errors.ErrZoneNotFound)
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "ZONE_NOT_FOUND", body.Error.Code)
}

func TestSendError_ValidationErrors(t *testing.T) {
	type payload struct {
		Lat float64 `validate:"required,gte=-90,lte=90"`
	}

	err := validator.Validate(&payload{Lat: 95})
	require.Error(t, err)

	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return SendError(c, err)
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Message, "Lat")
}

func TestSendError_UnknownError(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return SendError(c, fmt.Errorf("pq: connection refused"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
}
