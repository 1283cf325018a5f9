package lookup

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/metrics"
	"github.com/jhlee0214/wakemeup/internal/pkg/report"
	pkgvalidator "github.com/jhlee0214/wakemeup/internal/pkg/validator"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"github.com/jhlee0214/wakemeup/internal/worker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	workerName = "stop-lookup"

	// lookupConcurrency - сколько событий одного batch обрабатывается параллельно
	lookupConcurrency = 4
	errorPause        = time.Second
)

const outcomeInvalid = "invalid"

// NearbyStopsFinder - use case, который воркер вызывает для каждого события
type NearbyStopsFinder interface {
	GetNearbyStops(ctx context.Context, req dto.NearbyStopsRequest) (*dto.NearbyStopsResponse, error)
}

// StopLookupWorker отвечает на события stream:stops:lookup
type StopLookupWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	finder       NearbyStopsFinder
	consumerName string
	batchSize    int
	readTimeout  time.Duration
	claimMinIdle time.Duration
}

// NewStopLookupWorker создает новый StopLookupWorker
func NewStopLookupWorker(
	streamRepo repository.StreamRepository,
	finder NearbyStopsFinder,
	consumerGroup string,
	batchSize int,
	readTimeout time.Duration,
	claimMinIdle time.Duration,
	logger *zap.Logger,
) *StopLookupWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &StopLookupWorker{
		BaseWorker:   worker.NewBaseWorker(workerName, consumerGroup, logger),
		streamRepo:   streamRepo,
		finder:       finder,
		consumerName: consumerName,
		batchSize:    batchSize,
		readTimeout:  readTimeout,
		claimMinIdle: claimMinIdle,
	}
}

// Start запускает воркер и блокируется до Stop или отмены ctx
func (w *StopLookupWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StopLookupWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize),
		zap.Duration("claim_min_idle", w.claimMinIdle))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamStopLookup, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.processBatch(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorPause)
		}
	}
}

// nextBatch сначала забирает сообщения, зависшие в pending дольше claimMinIdle
// (у этого или у погибшего consumer), и только потом читает новые.
func (w *StopLookupWorker) nextBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	claimed, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamStopLookup,
		w.ConsumerGroup(),
		w.consumerName,
		w.claimMinIdle,
		w.batchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending messages: %w", err)
	}
	if len(claimed) > 0 {
		w.Logger().Info("Reclaimed pending messages", zap.Int("message_count", len(claimed)))
		return claimed, nil
	}

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamStopLookup,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
		w.readTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

// processBatch читает batch, отвечает на каждое событие и подтверждает сообщения.
// Возвращает количество прочитанных сообщений.
func (w *StopLookupWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.nextBatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	// nil - сообщение битое, ответить некуда
	results := make([]*domain.StopLookupDoneEvent, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			event, err := parseMessage(msg)
			if err != nil {
				logger.Warn("Failed to parse message, skipping",
					zap.String("message_id", msg.ID),
					zap.Error(err))
				metrics.StopLookupsProcessed.WithLabelValues(outcomeInvalid).Inc()
				return nil
			}
			results[i] = w.handleEvent(gctx, event)
			return nil
		})
	}
	_ = g.Wait()

	ackIDs := make([]string, 0, len(messages))
	for i, msg := range messages {
		done := results[i]
		if done != nil {
			if err := w.streamRepo.PublishToStream(ctx, domain.StreamStopLookupDone, done); err != nil {
				logger.Error("Failed to publish done event, leaving message pending",
					zap.String("request_id", done.RequestID.String()),
					zap.Error(err))
				continue
			}
		}
		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamStopLookup, w.ConsumerGroup(), ackIDs); err != nil {
		// сообщения останутся в pending, их заберёт nextBatch после claimMinIdle
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", len(ackIDs)))

	return len(messages), nil
}

// handleEvent runs the lookup for one event; failures become the event's error field
func (w *StopLookupWorker) handleEvent(ctx context.Context, event *domain.StopLookupEvent) *domain.StopLookupDoneEvent {
	done := &domain.StopLookupDoneEvent{
		RequestID: event.RequestID,
		Stops:     []domain.NearbyStop{},
	}

	if !event.HasLocation() {
		done.Error = errors.ErrInvalidCoordinates.Message
		done.ProcessedAt = time.Now().UTC()
		metrics.StopLookupsProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		return done
	}

	req := dto.NearbyStopsRequest{
		Lat:         event.Lat,
		Lon:         event.Lon,
		Mode:        event.Mode,
		MaxResults:  event.MaxResults,
		MaxDistance: event.MaxDistance,
	}
	if err := pkgvalidator.Validate(&req); err != nil {
		w.Logger().Warn("Invalid stop lookup event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = validationMessage(err)
		done.ProcessedAt = time.Now().UTC()
		metrics.StopLookupsProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		return done
	}

	resp, err := w.finder.GetNearbyStops(ctx, req)
	done.ProcessedAt = time.Now().UTC()

	if err != nil {
		w.Logger().Warn("Stop lookup failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		if report.ShouldReport(err) {
			report.ReportError(err, map[string]string{
				"worker":     workerName,
				"request_id": event.RequestID.String(),
			})
		}
		done.Error = errorMessage(err)
		metrics.StopLookupsProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		return done
	}

	done.Stops = resp.Stops
	metrics.StopLookupsProcessed.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return done
}

// parseMessage парсит сообщение из стрима в StopLookupEvent
func parseMessage(msg domain.StreamMessage) (*domain.StopLookupEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.StopLookupEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.RequestID == uuid.Nil {
		return nil, fmt.Errorf("missing request_id")
	}

	return &event, nil
}

// validationMessage turns a rejected event into a client-facing message
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if stdErrors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Field() == "mode" {
				return errors.ErrInvalidTransportMode.Message
			}
		}
	}
	return errors.ErrInvalidRequest.Message
}

// errorMessage keeps client-facing messages for known errors and hides internals otherwise
func errorMessage(err error) string {
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Message
	}
	var apiErr *errors.TransitAPIError
	if stdErrors.As(err, &apiErr) {
		return errors.ErrTransitAPI.Message
	}
	return errors.ErrInternalServer.Message
}
