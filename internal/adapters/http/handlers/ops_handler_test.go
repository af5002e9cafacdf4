package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/mocks"
)

func TestOpsHandler_GetHealth(t *testing.T) {
	t.Parallel()

	changed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		result     *domain.HealthResult
		wantStatus int
	}{
		{
			name: "healthy",
			result: &domain.HealthResult{
				OverallStatus: domain.HealthResponseStatusHealthy,
				Broker:        domain.DependencyStatus{Status: domain.DependencyCheckStatusHealthy, LastChanged: changed},
				Uptime:        12.5,
				Version:       "1.2.3",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "degraded",
			result: &domain.HealthResult{
				OverallStatus: domain.HealthResponseStatusDegraded,
				Broker: domain.DependencyStatus{
					Status:      domain.DependencyCheckStatusUnhealthy,
					LastChanged: changed,
					Error:       "connection refused",
				},
				Version: "1.2.3",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			result: &domain.HealthResult{
				OverallStatus: domain.HealthResponseStatusUnhealthy,
				Broker:        domain.DependencyStatus{Status: domain.DependencyCheckStatusUnhealthy, LastChanged: changed},
				Version:       "1.2.3",
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checker := &mocks.FakeHealthChecker{}
			checker.CheckHealthReturns(tc.result)

			handler := NewOpsHandler(checker, infrastructure.NewTestLogger())

			rec := httptest.NewRecorder()
			handler.GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body domain.HealthResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, *tc.result, body)
			assert.Equal(t, 1, checker.CheckHealthCallCount())
		})
	}
}

func TestOpsHandler_GetHealthBodyShape(t *testing.T) {
	t.Parallel()

	checker := &mocks.FakeHealthChecker{}
	checker.CheckHealthReturns(&domain.HealthResult{
		OverallStatus: domain.HealthResponseStatusDegraded,
		Broker: domain.DependencyStatus{
			Status:      domain.DependencyCheckStatusUnhealthy,
			LastChanged: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			Error:       "connection refused",
		},
		Uptime:  3,
		Version: "1.2.3",
	})

	rec := httptest.NewRecorder()
	NewOpsHandler(checker, infrastructure.NewTestLogger()).
		GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.ElementsMatch(t, []string{"status", "broker", "uptime_seconds", "version"}, mapKeys(body))
	assert.Equal(t, "degraded", body["status"])

	broker, ok := body["broker"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"status", "last_changed", "error"}, mapKeys(broker))
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	return keys
}
