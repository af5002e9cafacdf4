package queue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errDialTimeout = errors.New("timeout while opening new AMQP connection")

// dialFunc opens a transport connection. It is swapped in tests.
type dialFunc func(ctx context.Context, dc dialConfig) (amqpConnection, error)

// amqpConnection is used mainly to be able to generate mocks for the AMQP connection behavior.
type amqpConnection interface {
	io.Closer

	IsClosed() bool
	Channel() (amqpChannel, error)
}

// amqpChannel is used mainly to be able to generate mocks for the AMQP channel behavior.
type amqpChannel interface {
	io.Closer

	IsClosed() bool
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyReturn(c chan amqp.Return) chan amqp.Return
}

// connectionAdapter narrows *amqp.Connection to amqpConnection.
type connectionAdapter struct {
	*amqp.Connection
}

func (c connectionAdapter) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

// dialAMQP opens a connection and gives up once the connect timeout elapses.
// A connection that completes after the deadline is closed in the background.
func dialAMQP(ctx context.Context, dc dialConfig) (amqpConnection, error) {
	type result struct {
		conn *amqp.Connection
		err  error
	}

	done := make(chan result, 1)

	go func() {
		conn, err := amqp.DialConfig(dc.url, dc.amqpConfig())
		done <- result{conn: conn, err: err}
	}()

	abandon := func() {
		go func() {
			if r := <-done; r.conn != nil {
				_ = r.conn.Close()
			}
		}()
	}

	timer := time.NewTimer(dc.connectTimeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			if isTimeout(r.err) {
				return nil, fmt.Errorf("%w: %w", errDialTimeout, r.err)
			}

			return nil, r.err
		}

		return connectionAdapter{Connection: r.conn}, nil

	case <-timer.C:
		abandon()

		return nil, errDialTimeout

	case <-ctx.Done():
		abandon()

		return nil, ctx.Err()
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, errDialTimeout) || errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
