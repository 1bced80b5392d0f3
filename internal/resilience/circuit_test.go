package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func fail(_ context.Context) (float64, error)    { return 0, errUpstream }
func succeed(_ context.Context) (float64, error) { return 29.5, nil }

func TestCircuitBreaker_ClosedPassesThrough(t *testing.T) {
	t.Parallel()

	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig())
	v, err := ExecuteVal(context.Background(), cb, succeed)

	require.NoError(t, err)
	assert.InDelta(t, 29.5, v, 1e-9)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, ResetTimeout: time.Minute})

	for i := 0; i < 2; i++ {
		_, err := ExecuteVal(context.Background(), cb, fail)
		require.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, CircuitOpen, cb.State())

	called := false
	_, err := ExecuteVal(context.Background(), cb, func(_ context.Context) (float64, error) {
		called = true
		return 0, nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsCount(t *testing.T) {
	t.Parallel()

	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, ResetTimeout: time.Minute})

	_, _ = ExecuteVal(context.Background(), cb, fail)
	_, _ = ExecuteVal(context.Background(), cb, succeed)
	_, _ = ExecuteVal(context.Background(), cb, fail)

	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var transitions []string
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		ResetTimeout:     30 * time.Second,
		OnStateChange: func(from, to CircuitState) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})
	cb.nowFunc = func() time.Time { return now }

	_, _ = ExecuteVal(context.Background(), cb, fail)
	require.Equal(t, CircuitOpen, cb.State())

	now = now.Add(31 * time.Second)
	assert.Equal(t, CircuitHalfOpen, cb.State())

	// Failed probe reopens.
	_, err := ExecuteVal(context.Background(), cb, fail)
	require.ErrorIs(t, err, errUpstream)
	assert.Equal(t, CircuitOpen, cb.State())

	now = now.Add(31 * time.Second)
	_, err = ExecuteVal(context.Background(), cb, succeed)
	require.NoError(t, err)
	assert.Equal(t, CircuitClosed, cb.State())

	assert.Equal(t, []string{
		"closed->open",
		"open->half-open",
		"half-open->open",
		"open->half-open",
		"half-open->closed",
	}, transitions)
}

func TestFromCircuitConfig(t *testing.T) {
	t.Parallel()

	cfg := FromCircuitConfig(5, 10)
	assert.Equal(t, 5, cfg.FailureThreshold)
	assert.Equal(t, 10*time.Second, cfg.ResetTimeout)

	def := FromCircuitConfig(0, -1)
	assert.Equal(t, DefaultCircuitBreakerConfig().FailureThreshold, def.FailureThreshold)
	assert.Equal(t, DefaultCircuitBreakerConfig().ResetTimeout, def.ResetTimeout)
}

func TestCircuitState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", CircuitClosed.String())
	assert.Equal(t, "open", CircuitOpen.String())
	assert.Equal(t, "half-open", CircuitHalfOpen.String())
	assert.Equal(t, "unknown", CircuitState(9).String())
}
