package infrastructure

import (
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

const (
	statusKey          = "status"
	outcomeKey         = "outcome"
	errorKindKey       = "error.kind"
	attemptKey         = "attempt"
	connectionEventKey = "connection.event"
	breakerFromKey     = "breaker.from"
	breakerToKey       = "breaker.to"
)

func StatusAttr(status string) attribute.KeyValue {
	return attribute.String(statusKey, status)
}

func OutcomeAttr(outcome string) attribute.KeyValue {
	return attribute.String(outcomeKey, outcome)
}

func ErrorKindAttr(kind string) attribute.KeyValue {
	return attribute.String(errorKindKey, kind)
}

func AttemptAttr(attempt int) attribute.KeyValue {
	return attribute.String(attemptKey, strconv.Itoa(attempt))
}

func ConnectionEventAttr(event string) attribute.KeyValue {
	return attribute.String(connectionEventKey, event)
}

func BreakerFromAttr(state string) attribute.KeyValue {
	return attribute.String(breakerFromKey, state)
}

func BreakerToAttr(state string) attribute.KeyValue {
	return attribute.String(breakerToKey, state)
}
