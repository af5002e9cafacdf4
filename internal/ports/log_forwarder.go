//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
)

//counterfeiter:generate -o ../mocks/log_forwarder.go . LogForwarder

type LogForwarder interface {
	Forward(ctx context.Context, msg *domain.LogMessage) error
}
