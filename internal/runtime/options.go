package runtime

import (
	"io"
	"os"
)

type (
	ForwarderOption func(*ForwarderCtx)
)

func WithForwarderTermination(ch chan os.Signal) ForwarderOption {
	return func(ctx *ForwarderCtx) {
		ctx.shutdownChannel = ch
	}
}

// WithInput replaces the configured log input.
func WithInput(r io.Reader) ForwarderOption {
	return func(ctx *ForwarderCtx) {
		ctx.input = r
	}
}
