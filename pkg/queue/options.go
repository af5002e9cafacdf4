package queue

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultConnectTimeout      = 5 * time.Second
	defaultChannelCloseTimeout = 5 * time.Second
	defaultHeartbeat           = 10 * time.Second
)

// publisherOptions configure a NewPublisher call. publisherOptions are set by the publisherOption
// values passed to NewPublisher.
type publisherOptions struct {
	connectTimeout      time.Duration
	channelCloseTimeout time.Duration
	heartbeat           time.Duration
	connectionName      string
	persistent          bool
	serializer          Serializer
	logger              Logger
	listener            ConnectionListener
	dial                dialFunc
}

type publisherOption func(options *publisherOptions)

// WithLogger returns a publisherOption which sets the logger used by the publisher.
func WithLogger(l Logger) publisherOption {
	return func(o *publisherOptions) {
		o.logger = l
	}
}

// WithConnectionTimeout returns a publisherOption which sets the timeout used when establishing a connection.
func WithConnectionTimeout(timeout time.Duration) publisherOption {
	return func(o *publisherOptions) {
		o.connectTimeout = timeout
	}
}

// WithChannelCloseTimeout returns a publisherOption which bounds how long Close waits for the
// channel to close gracefully before aborting it.
func WithChannelCloseTimeout(timeout time.Duration) publisherOption {
	return func(o *publisherOptions) {
		o.channelCloseTimeout = timeout
	}
}

// WithHeartbeat returns a publisherOption which sets the AMQP heartbeat interval.
func WithHeartbeat(d time.Duration) publisherOption {
	return func(o *publisherOptions) {
		o.heartbeat = d
	}
}

// WithConnectionName returns a publisherOption which names the connection in the broker's management UI.
func WithConnectionName(name string) publisherOption {
	return func(o *publisherOptions) {
		o.connectionName = name
	}
}

// WithPersistentMessages returns a publisherOption which marks every published message
// persistent (enabled) or transient (disabled).
func WithPersistentMessages(enabled bool) publisherOption {
	return func(o *publisherOptions) {
		o.persistent = enabled
	}
}

// WithSerializer returns a publisherOption which sets how messages are turned into payloads.
// A nil serializer keeps the JSON default.
func WithSerializer(s Serializer) publisherOption {
	return func(o *publisherOptions) {
		if s != nil {
			o.serializer = s
		}
	}
}

// WithConnectionListener returns a publisherOption which registers a listener for connection state changes.
func WithConnectionListener(l ConnectionListener) publisherOption {
	return func(o *publisherOptions) {
		if l != nil {
			o.listener = l
		}
	}
}

func withDialer(d dialFunc) publisherOption {
	return func(o *publisherOptions) {
		o.dial = d
	}
}

func defaultPublisherOptions() publisherOptions {
	return publisherOptions{
		connectTimeout:      defaultConnectTimeout,
		channelCloseTimeout: defaultChannelCloseTimeout,
		heartbeat:           defaultHeartbeat,
		serializer:          JSONSerializer{},
		logger:              NewLoggerAdapter(zerolog.Nop()),
		listener:            nopListener{},
		dial:                dialAMQP,
	}
}
