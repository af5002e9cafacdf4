package relay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/ports"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

const (
	OutcomeForwarded = "forwarded"
	OutcomeSkipped   = "skipped"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeOversized = "oversized"

	minLineBytes = 16
)

var _ ports.BackgroundProcessor = (*Processor)(nil)

// Stats counts lines by outcome.
type Stats struct {
	Forwarded int
	Skipped   int
	Rejected  int
	Failed    int
	Oversized int
}

// Processor reads newline separated log lines and forwards each one. Lines are
// handled one at a time on the goroutine that called Start.
type Processor struct {
	input        io.Reader
	forwarder    ports.LogForwarder
	source       string
	maxLineBytes int
	logger       infrastructure.Logger
	metrics      infrastructure.Metrics
	now          func() time.Time
	stats        Stats
}

func NewProcessor(
	input io.Reader,
	forwarder ports.LogForwarder,
	source string,
	maxLineBytes int,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) *Processor {
	if maxLineBytes < minLineBytes {
		maxLineBytes = minLineBytes
	}

	return &Processor{
		input:        input,
		forwarder:    forwarder,
		source:       source,
		maxLineBytes: maxLineBytes,
		logger:       logger.Component("relay"),
		metrics:      metrics,
		now:          time.Now,
	}
}

type line struct {
	text      string
	oversized bool
}

// Start forwards lines until the input is exhausted, in which case it returns nil,
// or until ctx is cancelled.
func (p *Processor) Start(ctx context.Context) error {
	p.logger.Info().Str("source", p.source).Msg("starting log relay")

	lines := make(chan line)
	readErr := make(chan error, 1)
	stop := make(chan struct{})

	defer close(stop)

	go func() {
		readErr <- p.read(lines, stop)
	}()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("log relay shutting down")

			return ctx.Err()

		case l, ok := <-lines:
			if !ok {
				err := <-readErr
				p.logSummary()

				if err != nil {
					return fmt.Errorf("failed to read log input: %w", err)
				}

				return nil
			}

			p.handle(ctx, l)
		}
	}
}

// Stats returns the counts so far. It must not be called while Start runs.
func (p *Processor) Stats() Stats {
	return p.stats
}

func (p *Processor) read(out chan<- line, stop <-chan struct{}) error {
	defer close(out)

	// Room for the line terminator, so a line of exactly maxLineBytes fits.
	reader := bufio.NewReaderSize(p.input, p.maxLineBytes+2)

	for {
		data, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		l := line{text: string(data), oversized: len(data) > p.maxLineBytes}

		for isPrefix {
			l.oversized = true

			_, isPrefix, err = reader.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}

				return err
			}
		}

		select {
		case out <- l:
		case <-stop:
			return nil
		}
	}
}

func (p *Processor) handle(ctx context.Context, l line) {
	if l.oversized {
		p.record(ctx, OutcomeOversized)
		p.logger.Warn().Int("max_line_bytes", p.maxLineBytes).Msg("dropping oversized log line")

		return
	}

	msg, err := domain.ParseLine(l.text, p.source, p.now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyLine) {
			p.record(ctx, OutcomeSkipped)

			return
		}

		p.record(ctx, OutcomeRejected)
		p.logger.Warn().Err(err).Msg("rejecting log line")

		return
	}

	if err := p.forwarder.Forward(ctx, msg); err != nil {
		outcome := OutcomeFailed
		if isDataError(err) {
			outcome = OutcomeRejected
		}

		p.record(ctx, outcome)
		p.logger.Error().
			Err(err).
			Str("message_id", msg.ID.String()).
			Str("outcome", outcome).
			Msg("failed to forward log line")

		return
	}

	p.record(ctx, OutcomeForwarded)
}

func (p *Processor) record(ctx context.Context, outcome string) {
	switch outcome {
	case OutcomeForwarded:
		p.stats.Forwarded++
	case OutcomeSkipped:
		p.stats.Skipped++
	case OutcomeRejected:
		p.stats.Rejected++
	case OutcomeFailed:
		p.stats.Failed++
	case OutcomeOversized:
		p.stats.Oversized++
	}

	p.metrics.RecordLine(ctx, outcome)
}

func (p *Processor) logSummary() {
	p.logger.Info().
		Int("forwarded", p.stats.Forwarded).
		Int("skipped", p.stats.Skipped).
		Int("rejected", p.stats.Rejected).
		Int("failed", p.stats.Failed).
		Int("oversized", p.stats.Oversized).
		Msg("log input exhausted")
}

func isDataError(err error) bool {
	return errors.Is(err, queue.ErrSerialization) ||
		errors.Is(err, domain.ErrInvalidMessage) ||
		errors.Is(err, domain.ErrReservedField) ||
		errors.Is(err, domain.ErrUnsupportedFieldType)
}
