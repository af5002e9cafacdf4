package config

import (
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

const (
	InputStdin = "stdin"
)

type (
	ServiceConfig struct {
		AppConfig      AppConfig            `json:"app_config"`
		Logging        LoggingConfig        `json:"logging"`
		Telemetry      Telemetry            `json:"telemetry"`
		SecretStorage  SecretStorageConfig  `json:"secret_storage"`
		OpsServer      OpsServerConfig      `json:"ops_server"`
		Queue          QueueConfig          `json:"queue"`
		Forwarder      ForwarderConfig      `json:"forwarder"`
		Backoff        BackoffConfig        `json:"backoff"`
		CircuitBreaker CircuitBreakerConfig `json:"circuit_breaker"`
	}

	AppConfig struct {
		ServiceName    string `envconfig:"APP_SERVICE_NAME" default:"svc-log-forwarder" json:"service_name"`
		ServiceVersion string `envconfig:"APP_SERVICE_VERSION" default:"0.0.0" json:"service_version"`
		CommitSHA      string `envconfig:"APP_COMMIT_SHA" default:"unknown" json:"commit_sha"`
		Env            string `envconfig:"APP_ENVIRONMENT" default:"unknown" json:"env"`
	}

	LoggingConfig struct {
		Level  string `envconfig:"LOGGING_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOGGING_FORMAT" default:"json" json:"format"`
	}

	Telemetry struct {
		ExporterType string `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`

		OtelGRPCHost       string `envconfig:"OTEL_HOST" json:"otel_grpc_host"`
		OtelGRPCPort       string `envconfig:"OTEL_PORT" default:"4317" json:"otel_grpc_port"`
		OtelProductCluster string `envconfig:"OTEL_PRODUCT_CLUSTER" json:"otel_product_cluster"`

		Metrics Metrics `json:"metrics"`
		Traces  Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1" json:"sampler_ratio"`
	}

	SecretStorageConfig struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" json:"-"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"role_id,omitempty"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"-"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"svc-log-forwarder" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    int           `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
		PollInterval  time.Duration `envconfig:"VAULT_POLL_INTERVAL" default:"24h" json:"poll_interval"`
	}

	OpsServerConfig struct {
		Enabled         bool          `envconfig:"OPS_SERVER_ENABLED" default:"true" json:"enabled"`
		Port            int           `envconfig:"OPS_SERVER_PORT" default:"8089" json:"port"`
		Host            string        `envconfig:"OPS_SERVER_HOST" default:"0.0.0.0" json:"host"`
		ReadTimeout     time.Duration `envconfig:"OPS_SERVER_READ_TIMEOUT" default:"5s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"OPS_SERVER_WRITE_TIMEOUT" default:"10s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"OPS_SERVER_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"OPS_SERVER_SHUTDOWN_TIMEOUT" default:"10s" json:"shutdown_timeout"`
	}

	// QueueConfig carries the broker address and the topology the publisher asserts.
	// Username and Password are only used when both are set.
	QueueConfig struct {
		Scheme              string        `envconfig:"RABBITMQ_SCHEME" default:"amqp" json:"scheme"`
		Host                string        `envconfig:"RABBITMQ_HOST" default:"localhost" json:"host"`
		Port                int           `envconfig:"RABBITMQ_PORT" default:"5672" json:"port"`
		Username            string        `envconfig:"RABBITMQ_USERNAME" default:"" json:"username,omitempty"`
		Password            string        `envconfig:"RABBITMQ_PASSWORD" default:"" json:"-"`
		VirtualHost         string        `envconfig:"RABBITMQ_VIRTUAL_HOST" default:"/" json:"virtual_host"`
		QueueName           string        `envconfig:"RABBITMQ_QUEUE_NAME" default:"graylog2-radio-messages" json:"queue_name"`
		ExchangeName        string        `envconfig:"RABBITMQ_EXCHANGE_NAME" default:"graylog2" json:"exchange_name"`
		ExchangeType        string        `envconfig:"RABBITMQ_EXCHANGE_TYPE" default:"topic" json:"exchange_type"`
		ExchangeDurable     bool          `envconfig:"RABBITMQ_EXCHANGE_DURABLE" default:"false" json:"exchange_durable"`
		RoutingKey          string        `envconfig:"RABBITMQ_ROUTING_KEY" default:"graylog2-radio-message" json:"routing_key"`
		PersistentMessages  bool          `envconfig:"RABBITMQ_PERSISTENT_MESSAGES" default:"false" json:"persistent_messages"`
		ConnectTimeout      time.Duration `envconfig:"RABBITMQ_CONNECT_TIMEOUT" default:"5s" json:"connect_timeout"`
		ChannelCloseTimeout time.Duration `envconfig:"RABBITMQ_CHANNEL_CLOSE_TIMEOUT" default:"5s" json:"channel_close_timeout"`
		Heartbeat           time.Duration `envconfig:"RABBITMQ_HEARTBEAT" default:"10s" json:"heartbeat"`
		ConnectionName      string        `envconfig:"RABBITMQ_CONNECTION_NAME" default:"" json:"connection_name,omitempty"`
	}

	ForwarderConfig struct {
		// Input is "stdin" or a file path.
		Input        string `envconfig:"FORWARDER_INPUT" default:"stdin" json:"input"`
		Source       string `envconfig:"FORWARDER_SOURCE" default:"" json:"source,omitempty"`
		MaxAttempts  int    `envconfig:"FORWARDER_MAX_ATTEMPTS" default:"3" json:"max_attempts"`
		MaxLineBytes int    `envconfig:"FORWARDER_MAX_LINE_BYTES" default:"1048576" json:"max_line_bytes"`
	}

	BackoffConfig struct {
		// BaseDelay is the amount of time to backoff after the first failure.
		BaseDelay time.Duration `envconfig:"BACKOFF_BASE_DELAY" default:"1s" json:"base_delay"`
		// Multiplier is the factor with which to multiply backoffs after a
		// failed retry. Should ideally be greater than 1.
		Multiplier float64 `envconfig:"BACKOFF_MULTIPLIER" default:"1.6" json:"multiplier"`
		// Jitter is the factor with which backoffs are randomized.
		Jitter float64 `envconfig:"BACKOFF_JITTER" default:"0.2" json:"jitter"`
		// MaxDelay is the upper bound of backoff delay.
		MaxDelay time.Duration `envconfig:"BACKOFF_MAX_DELAY" default:"10s" json:"max_delay"`
	}

	CircuitBreakerConfig struct {
		MaxRequests         uint32        `envconfig:"CIRCUIT_BREAKER_MAX_REQUESTS" default:"3" json:"max_requests"`
		Interval            time.Duration `envconfig:"CIRCUIT_BREAKER_INTERVAL" default:"10s" json:"interval"`
		Timeout             time.Duration `envconfig:"CIRCUIT_BREAKER_TIMEOUT" default:"30s" json:"timeout"`
		ConsecutiveFailures uint32        `envconfig:"CIRCUIT_BREAKER_CONSECUTIVE_FAILURES" default:"5" json:"consecutive_failures"`
	}
)
