package queue

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultScheme   = "amqp"
	anonymousSASL   = "ANONYMOUS"
	connectionLabel = "connection_name"
)

// Config is used to establish a connection with a RabbitMQ server.
// Username and Password are only sent when both are set; otherwise the
// connection authenticates anonymously.
type Config struct {
	Scheme   string
	Username string
	Password string
	Host     string
	Port     int
	Vhost    string
}

func (c Config) hasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// getURL returns the broker address without user information. Credentials
// travel through the SASL mechanisms of the dial configuration.
func getURL(cfg Config) string {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	uri := amqp.URI{
		Scheme:   scheme,
		Username: "guest",
		Password: "guest",
		Host:     cfg.Host,
		Port:     cfg.Port,
		Vhost:    cfg.Vhost,
	}

	return uri.String()
}

// anonymousAuth implements the SASL ANONYMOUS mechanism.
type anonymousAuth struct{}

func (anonymousAuth) Mechanism() string { return anonymousSASL }

func (anonymousAuth) Response() string { return "" }

// dialConfig is the transport configuration built before every connect.
type dialConfig struct {
	url            string
	vhost          string
	sasl           []amqp.Authentication
	heartbeat      time.Duration
	connectTimeout time.Duration
	connectionName string
}

func newDialConfig(cfg Config, opts publisherOptions) dialConfig {
	dc := dialConfig{
		url:            getURL(cfg),
		vhost:          cfg.Vhost,
		heartbeat:      opts.heartbeat,
		connectTimeout: opts.connectTimeout,
		connectionName: opts.connectionName,
	}

	if dc.connectTimeout <= 0 {
		dc.connectTimeout = defaultConnectTimeout
	}

	if cfg.hasCredentials() {
		dc.sasl = []amqp.Authentication{&amqp.PlainAuth{
			Username: cfg.Username,
			Password: cfg.Password,
		}}
	} else {
		dc.sasl = []amqp.Authentication{anonymousAuth{}}
	}

	return dc
}

func (dc dialConfig) amqpConfig() amqp.Config {
	props := amqp.NewConnectionProperties()
	if dc.connectionName != "" {
		props[connectionLabel] = dc.connectionName
	}

	return amqp.Config{
		SASL:       dc.sasl,
		Vhost:      dc.vhost,
		Heartbeat:  dc.heartbeat,
		Properties: props,
		Dial:       amqp.DefaultDial(dc.connectTimeout),
	}
}
