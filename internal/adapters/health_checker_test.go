package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
	"github.com/architeacher/svc-log-forwarder/internal/mocks"
)

func TestHealthChecker_BrokerTransitions(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}
	checker := NewHealthChecker("1.0.0", metrics)
	ctx := context.Background()

	initial := checker.CheckHealth(ctx)
	assert.Equal(t, domain.HealthResponseStatusHealthy, initial.OverallStatus)
	assert.Equal(t, domain.DependencyCheckStatusUnknown, initial.Broker.Status)
	assert.Equal(t, "1.0.0", initial.Version)

	checker.OnConnected()

	connected := checker.CheckHealth(ctx)
	assert.Equal(t, domain.DependencyCheckStatusHealthy, connected.Broker.Status)
	assert.Empty(t, connected.Broker.Error)
	assert.False(t, connected.Broker.LastChanged.Before(initial.Broker.LastChanged))

	checker.OnDisconnected(errors.New("connection reset by peer"))

	lost := checker.CheckHealth(ctx)
	assert.Equal(t, domain.HealthResponseStatusDegraded, lost.OverallStatus)
	assert.Equal(t, domain.DependencyCheckStatusUnhealthy, lost.Broker.Status)
	assert.Equal(t, "connection reset by peer", lost.Broker.Error)

	checker.OnDisconnected(nil)

	closed := checker.CheckHealth(ctx)
	assert.Equal(t, domain.HealthResponseStatusHealthy, closed.OverallStatus)
	assert.Equal(t, domain.DependencyCheckStatusUnknown, closed.Broker.Status)

	require.Equal(t, 3, metrics.RecordConnectionEventCallCount())

	events := make([]string, 0, 3)
	for i := range 3 {
		_, event := metrics.RecordConnectionEventArgsForCall(i)
		events = append(events, event)
	}

	assert.Equal(t, []string{ConnectionEventConnected, ConnectionEventFailed, ConnectionEventDisconnected}, events)
}

func TestHealthChecker_OpenBreakerIsUnhealthy(t *testing.T) {
	t.Parallel()

	state := "closed"
	checker := NewHealthChecker("1.0.0", &mocks.FakeMetrics{})
	checker.WatchBreaker(func() string { return state })
	checker.OnConnected()

	assert.Equal(t, domain.HealthResponseStatusHealthy, checker.CheckHealth(context.Background()).OverallStatus)

	state = "open"

	assert.Equal(t, domain.HealthResponseStatusUnhealthy, checker.CheckHealth(context.Background()).OverallStatus)
}
