package circuitbreaker

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreakerTripsAfterRepeatedFailures(t *testing.T) {
	cb := CreateCircuitBreaker[string]("test")
	failure := errors.New("host unreachable")

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (string, error) { return "", failure })
		assert.ErrorIs(t, err, failure)
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (string, error) { return "ok", nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
