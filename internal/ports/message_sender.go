//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"
)

//counterfeiter:generate -o ../mocks/message_sender.go . MessageSender

// MessageSender hands a message to the broker. Implementations are owned by a
// single goroutine.
type MessageSender interface {
	Send(ctx context.Context, msg any) error
	Close() error
}
