package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/require"
)

func TestNewRetryHandlerDefaults(t *testing.T) {
	handler := NewRetryHandler(RetryConfig{})
	require.Equal(t, defaultInitialBackoff, handler.cfg.InitialBackoff)
	require.Equal(t, defaultMaxBackoff, handler.cfg.MaxBackoff)
	require.Equal(t, defaultBackoffFactor, handler.cfg.Multiplier)
	require.Equal(t, 0, handler.cfg.MaxRetries)

	clamped := NewRetryHandler(RetryConfig{MaxRetries: -3, Multiplier: 0.5})
	require.Equal(t, 0, clamped.cfg.MaxRetries)
	require.Equal(t, defaultBackoffFactor, clamped.cfg.Multiplier)
}

func TestRetryHandlerDo(t *testing.T) {
	t.Run("success on first try", func(t *testing.T) {
		handler := NewRetryHandler(RetryConfig{MaxRetries: 3})

		calls := 0
		err := handler.Do(context.Background(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("retries retryable error until success", func(t *testing.T) {
		handler := NewRetryHandler(RetryConfig{
			MaxRetries:     3,
			InitialBackoff: time.Millisecond,
		})

		calls := 0
		err := handler.Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &openai.Error{StatusCode: http.StatusTooManyRequests}
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("does not retry non-retryable error", func(t *testing.T) {
		handler := NewRetryHandler(RetryConfig{MaxRetries: 3, InitialBackoff: time.Millisecond})

		calls := 0
		err := handler.Do(context.Background(), func() error {
			calls++
			return &openai.Error{StatusCode: http.StatusUnauthorized}
		})
		require.Error(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		handler := NewRetryHandler(RetryConfig{MaxRetries: 2, InitialBackoff: time.Millisecond})

		calls := 0
		err := handler.Do(context.Background(), func() error {
			calls++
			return &openai.Error{StatusCode: http.StatusServiceUnavailable}
		})
		require.Error(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		handler := NewRetryHandler(RetryConfig{MaxRetries: 5, InitialBackoff: 50 * time.Millisecond})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := handler.Do(ctx, func() error {
			return &openai.Error{StatusCode: http.StatusServiceUnavailable}
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestShouldRetry(t *testing.T) {
	require.False(t, shouldRetry(nil))
	require.False(t, shouldRetry(context.Canceled))
	require.False(t, shouldRetry(context.DeadlineExceeded))
	require.False(t, shouldRetry(errors.New("plain error")))
	require.True(t, shouldRetry(&openai.Error{StatusCode: http.StatusBadGateway}))
	require.False(t, shouldRetry(&openai.Error{StatusCode: http.StatusBadRequest}))
}
