package domain

type (
	DependencyCheckStatus string

	HealthResponseStatus string
)

const (
	DependencyCheckStatusHealthy   DependencyCheckStatus = "healthy"
	DependencyCheckStatusUnhealthy DependencyCheckStatus = "unhealthy"
	// DependencyCheckStatusUnknown is reported before the first connection and
	// after a clean close.
	DependencyCheckStatusUnknown DependencyCheckStatus = "unknown"
)

const (
	HealthResponseStatusHealthy   HealthResponseStatus = "healthy"
	HealthResponseStatusDegraded  HealthResponseStatus = "degraded"
	HealthResponseStatusUnhealthy HealthResponseStatus = "unhealthy"
)
