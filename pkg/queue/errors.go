package queue

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a Publisher failure so callers can branch on it.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConnectTimeout
	KindConnectFailure
	KindSerialization
	KindPublish
)

var (
	// ErrConnectTimeout is matched by errors raised when opening a connection took longer than the connect timeout.
	ErrConnectTimeout = errors.New("queue: connect timeout")
	// ErrConnectFailure is matched by any other failure while connecting, opening the channel or declaring topology.
	ErrConnectFailure = errors.New("queue: connect failure")
	// ErrSerialization is matched when a message could not be turned into a payload.
	ErrSerialization = errors.New("queue: serialization failure")
	// ErrPublish is matched when the broker could not accept a publish.
	ErrPublish = errors.New("queue: publish failure")
	// ErrConcurrentUse is returned when a Publisher is entered by a second goroutine.
	ErrConcurrentUse = errors.New("queue: publisher used concurrently")
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnectTimeout:
		return "connect_timeout"
	case KindConnectFailure:
		return "connect_failure"
	case KindSerialization:
		return "serialization"
	case KindPublish:
		return "publish"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConnectTimeout:
		return ErrConnectTimeout
	case KindConnectFailure:
		return ErrConnectFailure
	case KindSerialization:
		return ErrSerialization
	case KindPublish:
		return ErrPublish
	default:
		return nil
	}
}

// Error is returned by every failing Publisher operation.
type Error struct {
	Kind ErrorKind // Failure class
	Op   string    // Operation that failed
	Err  error     // Underlying error
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("queue: %s failed (%s)", e.Op, e.Kind)
	}

	return fmt.Sprintf("queue: %s failed (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the receiver's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()

	return s != nil && target == s
}

// TopologyError describes a failed declaration or binding.
type TopologyError struct {
	Component string // exchange, queue or binding
	Name      string
	Op        string
	Err       error
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("failed to %s %s '%s': %v", e.Op, e.Component, e.Name, e.Err)
}

func (e *TopologyError) Unwrap() error {
	return e.Err
}

// PublishError describes a publish the broker did not accept.
type PublishError struct {
	Exchange   string
	RoutingKey string
	Err        error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish to %s/%s (mandatory=true): %v", e.Exchange, e.RoutingKey, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a Publisher error, or KindUnknown.
func KindOf(err error) ErrorKind {
	var qErr *Error
	if errors.As(err, &qErr) {
		return qErr.Kind
	}

	return KindUnknown
}

// IsRetryable reports whether retrying the whole Send may succeed.
// A serialization failure is a data problem and never is.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, ErrSerialization):
		return false
	case errors.Is(err, ErrConcurrentUse):
		return false
	}

	return true
}
