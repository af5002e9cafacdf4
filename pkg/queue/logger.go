package queue

// Logger defines a simple logging interface to avoid circular dependencies
type Logger interface {
	Info() LogEvent
	Warn() LogEvent
	Error() LogEvent
	Debug() LogEvent
}

// LogEvent defines a simple log event interface
type LogEvent interface {
	Msg(string)
	Err(error) LogEvent
	Str(string, string) LogEvent
	Int(string, int) LogEvent
}
