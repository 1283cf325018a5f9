package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/usecase"
)

func TestRetryingSource(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	stops := []domain.Stop{stopNorthOf(highpoint, 2500, 50)}

	t.Run("retries server errors then succeeds", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 2, time.Millisecond, logger)

		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Return(nil, errors.NewTransitAPIError("FindStopsNear", http.StatusServiceUnavailable, assert.AnError)).Once()
		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Return(nil, errors.NewTransitTransportError("FindStopsNear", assert.AnError)).Once()
		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Return(stops, nil).Once()

		result, err := rs.FindStopsNear(ctx, testStopQuery(), testCreds)

		require.NoError(t, err)
		assert.Equal(t, stops, result)
		source.AssertNumberOfCalls(t, "FindStopsNear", 3)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 2, time.Millisecond, logger)

		apiErr := errors.NewTransitAPIError("FindRoutesForStop", http.StatusBadGateway, assert.AnError)
		source.On("FindRoutesForStop", mock.Anything, int64(2500), domain.TransportModeTram, testCreds).Return(nil, apiErr)

		_, err := rs.FindRoutesForStop(ctx, 2500, domain.TransportModeTram, testCreds)

		assert.ErrorIs(t, err, apiErr)
		source.AssertNumberOfCalls(t, "FindRoutesForStop", 3)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 3, time.Millisecond, logger)

		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Return(nil, errors.NewTransitAPIError("FindStopsNear", http.StatusForbidden, assert.AnError))

		_, err := rs.FindStopsNear(ctx, testStopQuery(), testCreds)

		assert.Error(t, err)
		source.AssertNumberOfCalls(t, "FindStopsNear", 1)
	})

	t.Run("requests that could not be built are not retried", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 3, time.Millisecond, logger)

		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Return(nil, errors.NewTransitAPIError("FindStopsNear", 0, assert.AnError))

		_, err := rs.FindStopsNear(ctx, testStopQuery(), testCreds)

		assert.Error(t, err)
		source.AssertNumberOfCalls(t, "FindStopsNear", 1)
	})

	t.Run("non api errors are not retried", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 3, time.Millisecond, logger)

		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).Return(nil, errors.ErrMissingCredentials)

		_, err := rs.FindStopsNear(ctx, testStopQuery(), testCreds)

		assert.ErrorIs(t, err, errors.ErrMissingCredentials)
		source.AssertNumberOfCalls(t, "FindStopsNear", 1)
	})

	t.Run("cancellation stops the backoff", func(t *testing.T) {
		source := &MockTransitDataSource{}
		rs := usecase.NewRetryingSource(source, 5, time.Hour, logger)

		cctx, cancel := context.WithCancel(ctx)
		source.On("FindStopsNear", mock.Anything, testStopQuery(), testCreds).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil, errors.NewTransitAPIError("FindStopsNear", http.StatusInternalServerError, assert.AnError))

		done := make(chan error, 1)
		go func() {
			_, err := rs.FindStopsNear(cctx, testStopQuery(), testCreds)
			done <- err
		}()

		select {
		case err := <-done:
			assert.Error(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("retry loop ignored cancellation")
		}
		source.AssertNumberOfCalls(t, "FindStopsNear", 1)
	})
}
