package queue

// Topology names the queue, exchange and binding asserted on every connect.
// Declarations are idempotent: re-declaring compatible entities is a no-op on the
// broker, an incompatible one fails with the broker's own error.
type Topology struct {
	QueueName       string
	ExchangeName    string
	ExchangeType    string
	RoutingKey      string
	ExchangeDurable bool
}

// declare asserts the queue, then the exchange, then binds them.
func (t Topology) declare(ch amqpChannel) error {
	if _, err := ch.QueueDeclare(
		t.QueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return &TopologyError{Component: "queue", Name: t.QueueName, Op: "declare", Err: err}
	}

	if err := ch.ExchangeDeclare(
		t.ExchangeName,
		t.ExchangeType,
		t.ExchangeDurable,
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return &TopologyError{Component: "exchange", Name: t.ExchangeName, Op: "declare", Err: err}
	}

	if err := ch.QueueBind(
		t.QueueName,
		t.RoutingKey,
		t.ExchangeName,
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return &TopologyError{Component: "binding", Name: t.QueueName + "->" + t.ExchangeName, Op: "create", Err: err}
	}

	return nil
}
