package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errCloseTimeout = errors.New("timeout when closing AMQP channel")

// ConnectionListener receives connection state changes. Callbacks run synchronously
// on the goroutine that owns the Publisher.
type ConnectionListener interface {
	OnConnected()
	OnDisconnected(err error)
}

type nopListener struct{}

func (nopListener) OnConnected() {}

func (nopListener) OnDisconnected(error) {}

// session is the connected state: a connection and the one channel opened on it.
type session struct {
	conn amqpConnection
	ch   amqpChannel
}

func (s *session) isOpen() bool {
	return !s.conn.IsClosed() && !s.ch.IsClosed()
}

// Publisher delivers messages to a single exchange over a connection that is
// established lazily and re-established before a send whenever it was lost.
//
// A Publisher belongs to one goroutine. Overlapping calls on the same instance
// fail with ErrConcurrentUse instead of racing on the connection.
type Publisher struct {
	config   Config
	topology Topology
	options  publisherOptions

	// nil while disconnected.
	session *session
	inUse   atomic.Bool
}

// NewPublisher creates a disconnected publisher. No network I/O happens until the
// first Connect or Send.
func NewPublisher(config Config, topology Topology, opts ...publisherOption) *Publisher {
	options := defaultPublisherOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Publisher{
		config:   config,
		topology: topology,
		options:  options,
	}
}

// IsConnected reports whether both the connection and the channel are open.
func (p *Publisher) IsConnected() bool {
	return p.session != nil && p.session.isOpen()
}

// Connect opens a connection and a channel and asserts the topology. Any previous
// session is discarded first.
func (p *Publisher) Connect(ctx context.Context) error {
	if err := p.acquire(); err != nil {
		return err
	}
	defer p.release()

	return p.connect(ctx)
}

// Send serializes msg and publishes it as a mandatory message, connecting first
// when needed. A serialization failure is returned before any transport work.
// No broker acknowledgement is awaited.
func (p *Publisher) Send(ctx context.Context, msg any) error {
	if err := p.acquire(); err != nil {
		return err
	}
	defer p.release()

	body, err := p.options.serializer.Serialize(msg)
	if err != nil {
		return newError(KindSerialization, "serialize", err)
	}

	if !p.IsConnected() {
		if err := p.connect(ctx); err != nil {
			return err
		}
	}

	publishing := amqp.Publishing{
		ContentType:  p.options.serializer.ContentType(),
		DeliveryMode: p.deliveryMode(),
		Body:         body,
	}

	if err := p.session.ch.PublishWithContext(
		ctx,
		p.topology.ExchangeName,
		p.topology.RoutingKey,
		true,  // mandatory
		false, // immediate
		publishing,
	); err != nil {
		return newError(KindPublish, "publish", &PublishError{
			Exchange:   p.topology.ExchangeName,
			RoutingKey: p.topology.RoutingKey,
			Err:        err,
		})
	}

	return nil
}

// Close releases the channel and the connection. It never fails because of the
// broker: errors are logged, and a channel that does not close within the channel
// close timeout is aborted by tearing down its connection.
func (p *Publisher) Close() error {
	if err := p.acquire(); err != nil {
		return err
	}
	defer p.release()

	s := p.session
	p.session = nil

	if s == nil {
		return nil
	}

	if !s.ch.IsClosed() {
		if err := closeWithTimeout(s.ch, p.options.channelCloseTimeout); err != nil {
			p.options.logger.Error().Err(err).Msg("failed to close AMQP channel")

			if errors.Is(err, errCloseTimeout) {
				p.abort(s)
			}
		}
	}

	if !s.conn.IsClosed() {
		if err := s.conn.Close(); err != nil {
			p.options.logger.Error().Err(err).Msg("failed to close AMQP connection")
		}
	}

	p.options.listener.OnDisconnected(nil)
	p.options.logger.Info().Msg("AMQP publisher closed")

	return nil
}

func (p *Publisher) connect(ctx context.Context) error {
	p.discard()

	dc := newDialConfig(p.config, p.options)

	p.options.logger.Debug().
		Str("url", dc.url).
		Str("exchange", p.topology.ExchangeName).
		Str("queue", p.topology.QueueName).
		Msg("connecting to RabbitMQ")

	conn, err := p.options.dial(ctx, dc)
	if err != nil {
		kind := KindConnectFailure
		if isTimeout(err) {
			kind = KindConnectTimeout
		}

		return p.connectFailed(newError(kind, "connect", err))
	}

	ch, err := conn.Channel()
	if err != nil {
		p.closeQuietly(conn)

		return p.connectFailed(newError(KindConnectFailure, "open channel", err))
	}

	if err := p.topology.declare(ch); err != nil {
		p.closeQuietly(ch)
		p.closeQuietly(conn)

		return p.connectFailed(newError(KindConnectFailure, "declare topology", err))
	}

	go p.logReturns(ch.NotifyReturn(make(chan amqp.Return, 1)))

	p.session = &session{conn: conn, ch: ch}

	p.options.logger.Info().
		Str("url", dc.url).
		Str("exchange", p.topology.ExchangeName).
		Str("routing_key", p.topology.RoutingKey).
		Msg("connected to RabbitMQ")
	p.options.listener.OnConnected()

	return nil
}

// discard drops the current session. Only a session whose link was lost is
// reported to the listener; a live one is just replaced.
func (p *Publisher) discard() {
	s := p.session
	if s == nil {
		return
	}

	p.session = nil

	if s.isOpen() {
		p.options.logger.Debug().Msg("replacing open AMQP session")
		p.closeQuietly(s.ch)
		p.closeQuietly(s.conn)

		return
	}

	p.options.logger.Warn().Msg("AMQP connection lost, reconnecting")
	p.closeQuietly(s.ch)
	p.closeQuietly(s.conn)
	p.options.listener.OnDisconnected(amqp.ErrClosed)
}

func (p *Publisher) connectFailed(err *Error) error {
	p.options.logger.Error().Err(err).Str("kind", err.Kind.String()).Msg("failed to connect to RabbitMQ")
	p.options.listener.OnDisconnected(err)

	return err
}

func (p *Publisher) abort(s *session) {
	p.options.logger.Warn().Msg("aborting AMQP channel")

	if err := s.conn.Close(); err != nil {
		p.options.logger.Error().Err(err).Msg("failed to abort AMQP channel")
	}
}

func (p *Publisher) closeQuietly(c interface{ Close() error }) {
	if err := c.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		p.options.logger.Debug().Err(err).Msg("ignoring close error")
	}
}

func (p *Publisher) logReturns(returns <-chan amqp.Return) {
	for r := range returns {
		p.options.logger.Warn().
			Str("exchange", r.Exchange).
			Str("routing_key", r.RoutingKey).
			Int("reply_code", int(r.ReplyCode)).
			Str("reply_text", r.ReplyText).
			Msg("message returned by broker")
	}
}

func (p *Publisher) deliveryMode() uint8 {
	if p.options.persistent {
		return amqp.Persistent
	}

	return amqp.Transient
}

func (p *Publisher) acquire() error {
	if !p.inUse.CompareAndSwap(false, true) {
		return ErrConcurrentUse
	}

	return nil
}

func (p *Publisher) release() {
	p.inUse.Store(false)
}

func closeWithTimeout(c interface{ Close() error }, timeout time.Duration) error {
	done := make(chan error, 1)

	go func() {
		done <- c.Close()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errCloseTimeout
	}
}
