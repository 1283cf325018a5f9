package usecase

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"go.uber.org/zap"
)

// RetryingSource retries network failures and 5xx responses of the wrapped
// source with linear backoff. Client errors and decode failures are returned at once.
type RetryingSource struct {
	next       repository.TransitDataSource
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

func NewRetryingSource(
	next repository.TransitDataSource,
	maxRetries int,
	backoff time.Duration,
	logger *zap.Logger,
) *RetryingSource {
	return &RetryingSource{
		next:       next,
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     logger,
	}
}

func (s *RetryingSource) FindStopsNear(
	ctx context.Context,
	q repository.StopQuery,
	creds domain.Credentials,
) ([]domain.Stop, error) {
	var stops []domain.Stop
	err := s.do(ctx, "FindStopsNear", func() error {
		var err error
		stops, err = s.next.FindStopsNear(ctx, q, creds)
		return err
	})
	return stops, err
}

func (s *RetryingSource) FindRoutesForStop(
	ctx context.Context,
	stopID int64,
	mode domain.TransportMode,
	creds domain.Credentials,
) ([]domain.Route, error) {
	var routes []domain.Route
	err := s.do(ctx, "FindRoutesForStop", func() error {
		var err error
		routes, err = s.next.FindRoutesForStop(ctx, stopID, mode, creds)
		return err
	})
	return routes, err
}

func (s *RetryingSource) do(ctx context.Context, op string, call func() error) error {
	for attempt := 0; ; attempt++ {
		err := call()
		if err == nil || attempt >= s.maxRetries || !isRetryable(err) || ctx.Err() != nil {
			return err
		}

		wait := s.backoff * time.Duration(attempt+1)
		s.logger.Warn("Retrying transit request",
			zap.String("operation", op),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

func isRetryable(err error) bool {
	if stdErrors.Is(err, context.Canceled) || stdErrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *errors.TransitAPIError
	return stdErrors.As(err, &apiErr) && apiErr.Temporary()
}
