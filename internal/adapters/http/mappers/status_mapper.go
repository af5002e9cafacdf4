package mappers

import (
	"net/http"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
)

// HealthStatusToHTTP maps the overall health to a probe friendly status code.
// A degraded forwarder still accepts input, so it is reported as 200.
func HealthStatusToHTTP(status domain.HealthResponseStatus) int {
	switch status {
	case domain.HealthResponseStatusHealthy, domain.HealthResponseStatusDegraded:
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}
