package queue

import (
	"errors"
	"fmt"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    ErrorKind
		matches error
		misses  error
	}{
		{name: "connect timeout", kind: KindConnectTimeout, matches: ErrConnectTimeout, misses: ErrConnectFailure},
		{name: "connect failure", kind: KindConnectFailure, matches: ErrConnectFailure, misses: ErrConnectTimeout},
		{name: "serialization", kind: KindSerialization, matches: ErrSerialization, misses: ErrPublish},
		{name: "publish", kind: KindPublish, matches: ErrPublish, misses: ErrSerialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("send: %w", newError(tt.kind, "op", amqp.ErrClosed))

			assert.ErrorIs(t, err, tt.matches)
			assert.NotErrorIs(t, err, tt.misses)
			assert.ErrorIs(t, err, amqp.ErrClosed)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := newError(KindPublish, "publish", errors.New("channel closed"))
	assert.Equal(t, "queue: publish failed (publish): channel closed", err.Error())

	bare := newError(KindConnectTimeout, "connect", nil)
	assert.Equal(t, "queue: connect failed (connect_timeout)", bare.Error())
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "connect_timeout", KindConnectTimeout.String())
	assert.Equal(t, "connect_failure", KindConnectFailure.String())
	assert.Equal(t, "serialization", KindSerialization.String())
	assert.Equal(t, "publish", KindPublish.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestKindOf_Foreign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
}

func TestTopologyError(t *testing.T) {
	t.Parallel()

	cause := &amqp.Error{Code: amqp.PreconditionFailed, Reason: "inequivalent arg"}
	err := &TopologyError{Component: "exchange", Name: "logmsg", Op: "declare", Err: cause}

	assert.Contains(t, err.Error(), "declare exchange 'logmsg'")

	var amqpErr *amqp.Error
	assert.ErrorAs(t, err, &amqpErr)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "serialization", err: newError(KindSerialization, "serialize", errors.New("bad")), want: false},
		{name: "concurrent use", err: ErrConcurrentUse, want: false},
		{name: "connect timeout", err: newError(KindConnectTimeout, "connect", errDialTimeout), want: true},
		{name: "connect failure", err: newError(KindConnectFailure, "connect", errors.New("refused")), want: true},
		{name: "publish", err: newError(KindPublish, "publish", amqp.ErrClosed), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
