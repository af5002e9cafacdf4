// Package queue provides a single-producer RabbitMQ publisher that keeps one
// lazily established connection and re-establishes it before a publish whenever
// the previous link was lost.
//
// # Overview
//
// A Publisher owns a connection, the one channel opened on it, and immutable
// settings: broker address, optional credentials, virtual host, the topology to
// assert (queue, exchange, binding), the message persistence flag and a connect
// timeout. Nothing touches the network until the first Connect or Send.
//
// # Basic Usage
//
//	config := queue.Config{
//		Host:  "localhost",
//		Port:  5672,
//		Vhost: "/",
//	}
//
//	topology := queue.Topology{
//		QueueName:    "logs",
//		ExchangeName: "logmsg",
//		ExchangeType: "direct",
//		RoutingKey:   "logs",
//	}
//
//	p := queue.NewPublisher(config, topology,
//		queue.WithPersistentMessages(true),
//		queue.WithConnectionTimeout(5*time.Second),
//	)
//	defer p.Close()
//
//	if err := p.Send(ctx, msg); err != nil {
//		switch queue.KindOf(err) {
//		case queue.KindSerialization:
//			// drop the message, retrying cannot help
//		default:
//			// retry the whole Send later
//		}
//	}
//
// # Connection Lifecycle
//
// Connect dials the broker, opens a channel, declares a durable queue, declares
// the exchange and binds the two with the routing key. Declarations are
// idempotent, so every reconnect re-asserts the same topology. A failure at any
// step discards the partial connection and leaves the publisher disconnected.
//
// Liveness is only checked when Send is called; there is no background poller,
// so a broken link is discovered by the next publish attempt.
//
// # Error Handling
//
// Every failure is an *Error carrying an ErrorKind: KindConnectTimeout,
// KindConnectFailure, KindSerialization or KindPublish. The matching sentinels
// (ErrConnectTimeout, ErrConnectFailure, ErrSerialization, ErrPublish) work with
// errors.Is, and the transport's own errors, e.g. *amqp.Error for a topology
// conflict, stay reachable through errors.As.
//
// There is no internal retry, backoff or publisher confirm tracking. Messages are
// published with the mandatory flag and returned messages are only logged.
//
// # Thread Safety
//
// A Publisher must be used by one goroutine at a time. Overlapping calls fail
// with ErrConcurrentUse. Use one Publisher per worker.
//
// # Dependencies
//
// This package depends on the official RabbitMQ AMQP client library:
//   - github.com/rabbitmq/amqp091-go
package queue
