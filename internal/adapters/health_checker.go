package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/ports"
	"github.com/architeacher/svc-log-forwarder/pkg/queue"
)

const (
	ConnectionEventConnected    = "connected"
	ConnectionEventDisconnected = "disconnected"
	ConnectionEventFailed       = "failed"

	breakerStateOpen = "open"
)

var (
	_ queue.ConnectionListener = (*HealthChecker)(nil)
	_ ports.HealthChecker      = (*HealthChecker)(nil)
)

// HealthChecker tracks the broker link as announced by the publisher and derives
// the service health from it. It never probes the broker itself.
type HealthChecker struct {
	startTime    time.Time
	version      string
	metrics      infrastructure.Metrics
	breakerState func() string

	mu     sync.RWMutex
	broker domain.DependencyStatus
}

func NewHealthChecker(version string, metrics infrastructure.Metrics) *HealthChecker {
	now := time.Now()

	return &HealthChecker{
		startTime:    now,
		version:      version,
		metrics:      metrics,
		breakerState: func() string { return "" },
		broker: domain.DependencyStatus{
			Status:      domain.DependencyCheckStatusUnknown,
			LastChanged: now,
		},
	}
}

// WatchBreaker makes an open circuit breaker report the service as unhealthy.
func (h *HealthChecker) WatchBreaker(state func() string) {
	h.breakerState = state
}

func (h *HealthChecker) OnConnected() {
	h.setBroker(domain.DependencyCheckStatusHealthy, "")
	h.metrics.RecordConnectionEvent(context.Background(), ConnectionEventConnected)
}

// OnDisconnected records a clean close (nil error) as unknown, since the next
// send reconnects, and a failure as unhealthy.
func (h *HealthChecker) OnDisconnected(err error) {
	if err == nil {
		h.setBroker(domain.DependencyCheckStatusUnknown, "")
		h.metrics.RecordConnectionEvent(context.Background(), ConnectionEventDisconnected)

		return
	}

	h.setBroker(domain.DependencyCheckStatusUnhealthy, err.Error())
	h.metrics.RecordConnectionEvent(context.Background(), ConnectionEventFailed)
}

// CheckHealth performs a health check and returns detailed results.
func (h *HealthChecker) CheckHealth(_ context.Context) *domain.HealthResult {
	h.mu.RLock()
	broker := h.broker
	h.mu.RUnlock()

	return &domain.HealthResult{
		OverallStatus: h.overallStatus(broker),
		Broker:        broker,
		Uptime:        time.Since(h.startTime).Seconds(),
		Version:       h.version,
	}
}

func (h *HealthChecker) overallStatus(broker domain.DependencyStatus) domain.HealthResponseStatus {
	if h.breakerState() == breakerStateOpen {
		return domain.HealthResponseStatusUnhealthy
	}

	if broker.Status == domain.DependencyCheckStatusUnhealthy {
		return domain.HealthResponseStatusDegraded
	}

	return domain.HealthResponseStatusHealthy
}

func (h *HealthChecker) setBroker(status domain.DependencyCheckStatus, errText string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.broker.Status != status {
		h.broker.LastChanged = time.Now()
	}

	h.broker.Status = status
	h.broker.Error = errText
}
