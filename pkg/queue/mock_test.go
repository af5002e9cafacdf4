package queue

import (
	"context"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
)

type MockConnection struct {
	mock.Mock

	closed atomic.Bool
}

func (m *MockConnection) Close() error {
	args := m.Called()
	m.closed.Store(true)

	return args.Error(0)
}

func (m *MockConnection) IsClosed() bool {
	return m.closed.Load()
}

func (m *MockConnection) Channel() (amqpChannel, error) {
	args := m.Called()
	ch, _ := args.Get(0).(amqpChannel)

	return ch, args.Error(1)
}

type MockAMQPChannel struct {
	mock.Mock

	closed atomic.Bool
}

func (m *MockAMQPChannel) Close() error {
	args := m.Called()
	m.closed.Store(true)

	return args.Error(0)
}

func (m *MockAMQPChannel) IsClosed() bool {
	return m.closed.Load()
}

func (m *MockAMQPChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	a := m.Called(name, kind, durable, autoDelete, internal, noWait, args)

	return a.Error(0)
}

func (m *MockAMQPChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	a := m.Called(name, durable, autoDelete, exclusive, noWait, args)

	return a.Get(0).(amqp.Queue), a.Error(1)
}

func (m *MockAMQPChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	a := m.Called(name, key, exchange, noWait, args)

	return a.Error(0)
}

func (m *MockAMQPChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	a := m.Called(ctx, exchange, key, mandatory, immediate, msg)

	return a.Error(0)
}

func (m *MockAMQPChannel) NotifyReturn(c chan amqp.Return) chan amqp.Return {
	close(c)

	return c
}

// newHealthyChannel returns a channel that accepts any topology and publish.
func newHealthyChannel() *MockAMQPChannel {
	ch := &MockAMQPChannel{}
	ch.On("QueueDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.Queue{}, nil).Maybe()
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()
	ch.On("QueueBind", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()
	ch.On("Close").Return(nil).Maybe()

	return ch
}

func newConnection(ch amqpChannel) *MockConnection {
	conn := &MockConnection{}
	conn.On("Channel").Return(ch, nil).Maybe()
	conn.On("Close").Return(nil).Maybe()

	return conn
}

// recordingDialer hands out the queued connections in order and records every dial.
type recordingDialer struct {
	mu      sync.Mutex
	configs []dialConfig
	conns   []amqpConnection
	err     error
}

func (d *recordingDialer) dial(_ context.Context, dc dialConfig) (amqpConnection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.configs = append(d.configs, dc)

	if d.err != nil {
		return nil, d.err
	}

	if len(d.conns) == 0 {
		return newConnection(newHealthyChannel()), nil
	}

	conn := d.conns[0]
	d.conns = d.conns[1:]

	return conn, nil
}

func (d *recordingDialer) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.configs)
}

type recordingListener struct {
	mu           sync.Mutex
	connected    int
	disconnected []error
}

func (l *recordingListener) OnConnected() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.connected++
}

func (l *recordingListener) OnDisconnected(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disconnected = append(l.disconnected, err)
}
