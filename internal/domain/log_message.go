package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reserved field names. They are filled from the message itself and cannot be
// set through AddField.
const (
	FieldID        = "_id"
	FieldMessage   = "message"
	FieldSource    = "source"
	FieldLevel     = "level"
	FieldTimestamp = "timestamp"
)

// Level is a syslog severity, 0 (emergency) to 7 (debug).
type Level int

const (
	LevelEmergency Level = iota
	LevelAlert
	LevelCritical
	LevelError
	LevelWarning
	LevelNotice
	LevelInfo
	LevelDebug
)

type LogMessage struct {
	ID        uuid.UUID
	Timestamp time.Time
	Source    string
	Message   string
	Level     Level
	Fields    map[string]any
}

func NewLogMessage(message, source string, timestamp time.Time) *LogMessage {
	return &LogMessage{
		ID:        uuid.New(),
		Timestamp: timestamp,
		Source:    source,
		Message:   message,
		Level:     LevelInfo,
		Fields:    make(map[string]any),
	}
}

// AddField sets an additional field. Values must be strings, booleans, integers,
// floats or time.Time.
func (m *LogMessage) AddField(key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return NewInvalidMessageError("field name must not be empty")
	}

	if IsReservedField(key) {
		return NewReservedFieldError(key)
	}

	if !IsSupportedFieldValue(value) {
		return NewUnsupportedFieldTypeError(key, value)
	}

	if m.Fields == nil {
		m.Fields = make(map[string]any)
	}

	m.Fields[key] = value

	return nil
}

func (m *LogMessage) Validate() error {
	if m.ID == uuid.Nil {
		return NewInvalidMessageError("message id must be set")
	}

	if strings.TrimSpace(m.Message) == "" {
		return NewInvalidMessageError("message must not be empty")
	}

	if m.Timestamp.IsZero() {
		return NewInvalidMessageError("timestamp must be set")
	}

	for key, value := range m.Fields {
		if IsReservedField(key) {
			return NewReservedFieldError(key)
		}

		if !IsSupportedFieldValue(value) {
			return NewUnsupportedFieldTypeError(key, value)
		}
	}

	return nil
}

// AllFields returns the additional fields merged with the reserved ones.
func (m *LogMessage) AllFields() map[string]any {
	all := make(map[string]any, len(m.Fields)+5)
	for key, value := range m.Fields {
		all[key] = value
	}

	all[FieldID] = m.ID.String()
	all[FieldMessage] = m.Message
	all[FieldSource] = m.Source
	all[FieldLevel] = int64(m.Level)
	all[FieldTimestamp] = m.Timestamp

	return all
}

func IsReservedField(key string) bool {
	switch key {
	case FieldID, FieldMessage, FieldSource, FieldLevel, FieldTimestamp:
		return true
	default:
		return false
	}
}

func IsSupportedFieldValue(value any) bool {
	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return true
	default:
		return false
	}
}
