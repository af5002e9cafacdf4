package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-log-forwarder/internal/config"
	"github.com/architeacher/svc-log-forwarder/internal/domain"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/ports"
	"github.com/architeacher/svc-log-forwarder/internal/shared/backoff"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

const breakerName = "broker-publisher"

// ForwarderService hands log messages to the broker. Transport failures are
// retried with backoff up to the configured attempts; data failures are returned
// at once. Repeated transport failures open a circuit breaker.
//
// It inherits the single-owner contract of the underlying sender.
type ForwarderService struct {
	sender          ports.MessageSender
	breaker         *gobreaker.CircuitBreaker
	backoffStrategy backoff.Strategy
	maxAttempts     int
	logger          infrastructure.Logger
	metrics         infrastructure.Metrics
	tracer          trace.Tracer
	wait            func(ctx context.Context, d time.Duration) error
}

func NewForwarderService(
	sender ports.MessageSender,
	forwarderCfg config.ForwarderConfig,
	breakerCfg config.CircuitBreakerConfig,
	backoffStrategy backoff.Strategy,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) *ForwarderService {
	maxAttempts := forwarderCfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	s := &ForwarderService{
		sender:          sender,
		backoffStrategy: backoffStrategy,
		maxAttempts:     maxAttempts,
		logger:          logger.Component("forwarder"),
		metrics:         metrics,
		tracer:          otel.Tracer("github.com/architeacher/svc-log-forwarder/internal/service"),
		wait:            sleepContext,
	}

	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerCfg.MaxRequests,
		Interval:    breakerCfg.Interval,
		Timeout:     breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerCfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isTransient(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			s.logger.Warn().
				Str("name", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")

			s.metrics.RecordBreakerStateChange(context.Background(), from.String(), to.String())
		},
	})

	return s
}

// Forward implements ports.LogForwarder.
func (s *ForwarderService) Forward(ctx context.Context, msg *domain.LogMessage) error {
	if msg == nil {
		return domain.NewInvalidMessageError("message must not be nil")
	}

	ctx, span := s.tracer.Start(ctx, "forwarder.Forward", trace.WithAttributes(
		attribute.String("log.id", msg.ID.String()),
		attribute.String("log.source", msg.Source),
	))
	defer span.End()

	start := time.Now()

	err := s.forward(ctx, msg, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	s.metrics.RecordForward(ctx, time.Since(start), err == nil, errorKind(err))

	return err
}

// Close releases the broker connection.
func (s *ForwarderService) Close() error {
	return s.sender.Close()
}

// BreakerState reports the circuit breaker state.
func (s *ForwarderService) BreakerState() string {
	return s.breaker.State().String()
}

func (s *ForwarderService) forward(ctx context.Context, msg *domain.LogMessage, span trace.Span) error {
	for attempt := 1; ; attempt++ {
		span.SetAttributes(attribute.Int("forward.attempt", attempt))

		err := s.send(ctx, msg)
		if err == nil {
			return nil
		}

		if !isTransient(err) || errors.Is(err, domain.ErrCircuitBreakerOpen) || ctx.Err() != nil {
			s.logger.Debug().
				Err(err).
				Str("message_id", msg.ID.String()).
				Msg("send failed, not retrying")

			return err
		}

		if attempt >= s.maxAttempts {
			return &domain.MaxAttemptsExceededError{
				MessageID:   msg.ID.String(),
				Attempts:    attempt,
				MaxAttempts: s.maxAttempts,
				Err:         err,
			}
		}

		delay := s.backoffStrategy.Backoff(attempt - 1)

		s.logger.Warn().
			Err(err).
			Str("message_id", msg.ID.String()).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("send failed, retrying")

		s.metrics.RecordRetry(ctx, attempt)

		if err := s.wait(ctx, delay); err != nil {
			return fmt.Errorf("retry aborted: %w", err)
		}
	}
}

func (s *ForwarderService) send(ctx context.Context, msg *domain.LogMessage) error {
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.sender.Send(ctx, msg)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", domain.ErrCircuitBreakerOpen, err)
	}

	return err
}

// isTransient reports whether a send failure is about the transport rather than
// the message, so that retrying it may succeed.
func isTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, domain.ErrInvalidMessage),
		errors.Is(err, domain.ErrReservedField),
		errors.Is(err, domain.ErrUnsupportedFieldType):
		return false
	}

	return queue.IsRetryable(err)
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrCircuitBreakerOpen):
		return "circuit_open"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	}

	return queue.KindOf(err).String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
