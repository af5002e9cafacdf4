package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-log-forwarder/internal/config"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

func TestQueueConfigMapping(t *testing.T) {
	t.Parallel()

	cfg := config.QueueConfig{
		Scheme:             "amqps",
		Host:               "broker.internal",
		Port:               5671,
		Username:           "radio",
		Password:           "secret",
		VirtualHost:        "/logs",
		QueueName:          "graylog2-radio-messages",
		ExchangeName:       "graylog2",
		ExchangeType:       "topic",
		ExchangeDurable:    true,
		RoutingKey:         "graylog2-radio-message",
		PersistentMessages: true,
		ConnectTimeout:     time.Second,
	}

	assert.Equal(t, queue.Config{
		Scheme:   "amqps",
		Username: "radio",
		Password: "secret",
		Host:     "broker.internal",
		Port:     5671,
		Vhost:    "/logs",
	}, QueueConnectionConfig(cfg))

	assert.Equal(t, queue.Topology{
		QueueName:       "graylog2-radio-messages",
		ExchangeName:    "graylog2",
		ExchangeType:    "topic",
		RoutingKey:      "graylog2-radio-message",
		ExchangeDurable: true,
	}, QueueTopology(cfg))
}

func TestNewPublisher_StartsDisconnected(t *testing.T) {
	t.Parallel()

	p := NewPublisher(config.QueueConfig{Host: "localhost", Port: 5672}, NewTestLogger(), nil, queue.JSONSerializer{})

	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Close())
}

func TestQueueConnectionConfig_IsASnapshot(t *testing.T) {
	t.Parallel()

	cfg := config.QueueConfig{Host: "broker.internal", Port: 5672, Username: "radio", Password: "secret"}

	connCfg := QueueConnectionConfig(cfg)

	cfg.Host = "broker.rotated"
	cfg.Password = "rotated"

	assert.Equal(t, "broker.internal", connCfg.Host)
	assert.Equal(t, "secret", connCfg.Password)
}
