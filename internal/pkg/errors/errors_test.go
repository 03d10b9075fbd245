package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_CloneSemantics(t *testing.T) {
	detailed := ErrCapacityExceeded.WithDetails(map[string]interface{}{"car_capacity": 50})

	// The sentinel is never mutated.
	assert.Nil(t, ErrCapacityExceeded.Details)
	assert.Equal(t, 50, detailed.Details["car_capacity"])
	assert.Equal(t, ErrCapacityExceeded.StatusCode, detailed.StatusCode)

	reworded := ErrValidation.WithMessage("at least one field must be provided")
	assert.Equal(t, "Invalid request parameters", ErrValidation.Message)
	assert.Equal(t, "at least one field must be provided", reworded.Message)
}

func TestAppError_Is(t *testing.T) {
	detailed := ErrRateLimited.WithDetails(map[string]interface{}{"window": "10m"})

	// Clones still match their sentinel through errors.Is.
	assert.True(t, stderrors.Is(detailed, ErrRateLimited))
	assert.False(t, stderrors.Is(detailed, ErrValidation))
	assert.False(t, stderrors.Is(stderrors.New("plain"), ErrRateLimited))
}
