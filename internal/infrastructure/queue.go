package infrastructure

import (
	"github.com/architeacher/svc-log-forwarder/internal/config"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

// NewPublisher wires a broker publisher from the service configuration. No
// connection is opened until the first send.
func NewPublisher(
	cfg config.QueueConfig,
	logger Logger,
	listener queue.ConnectionListener,
	serializer queue.Serializer,
) *queue.Publisher {
	return queue.NewPublisher(
		QueueConnectionConfig(cfg),
		QueueTopology(cfg),
		queue.WithLogger(queue.NewLoggerAdapter(logger.Logger)),
		queue.WithConnectionListener(listener),
		queue.WithSerializer(serializer),
		queue.WithConnectionTimeout(cfg.ConnectTimeout),
		queue.WithChannelCloseTimeout(cfg.ChannelCloseTimeout),
		queue.WithHeartbeat(cfg.Heartbeat),
		queue.WithConnectionName(cfg.ConnectionName),
		queue.WithPersistentMessages(cfg.PersistentMessages),
	)
}

func QueueConnectionConfig(cfg config.QueueConfig) queue.Config {
	return queue.Config{
		Scheme:   cfg.Scheme,
		Username: cfg.Username,
		Password: cfg.Password,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Vhost:    cfg.VirtualHost,
	}
}

func QueueTopology(cfg config.QueueConfig) queue.Topology {
	return queue.Topology{
		QueueName:       cfg.QueueName,
		ExchangeName:    cfg.ExchangeName,
		ExchangeType:    cfg.ExchangeType,
		RoutingKey:      cfg.RoutingKey,
		ExchangeDurable: cfg.ExchangeDurable,
	}
}
