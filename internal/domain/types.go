package domain

import (
	"time"
)

type (
	// DependencyStatus represents the health status of a dependency
	DependencyStatus struct {
		Status      DependencyCheckStatus `json:"status"`
		LastChanged time.Time             `json:"last_changed,omitempty"`
		Error       string                `json:"error,omitempty"`
	}

	// HealthResult is what the ops endpoint reports. The broker status is the last
	// state the publisher announced, so reading it never touches the connection.
	HealthResult struct {
		OverallStatus HealthResponseStatus `json:"status"`
		Broker        DependencyStatus     `json:"broker"`
		Uptime        float64              `json:"uptime_seconds"`
		Version       string               `json:"version"`
	}
)
