package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
)

const (
	fieldFullMessage = "full_message"
	fieldFacility    = "facility"
)

// ParseLine turns one input line into a LogMessage. A line holding a JSON object
// is read as a GELF record (short_message, host, level, timestamp in seconds,
// underscore-prefixed additional fields); any other line becomes the message text.
func ParseLine(line, source string, now time.Time) (*LogMessage, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, ErrEmptyLine
	}

	if !strings.HasPrefix(trimmed, "{") || !json.Valid([]byte(trimmed)) {
		return NewLogMessage(trimmed, source, now), nil
	}

	record := gelf.Message{Level: int32(LevelInfo)}
	if err := unmarshalGELF(&record, []byte(trimmed)); err != nil {
		return nil, NewInvalidMessageError("malformed GELF record").WithDetails("error", err.Error())
	}

	return fromGELF(&record, source, now)
}

// unmarshalGELF guards against records the decoder cannot index, such as an
// empty key.
func unmarshalGELF(record *gelf.Message, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode GELF record: %v", r)
		}
	}()

	return record.UnmarshalJSON(data)
}

func fromGELF(record *gelf.Message, source string, now time.Time) (*LogMessage, error) {
	text := record.Short
	if strings.TrimSpace(text) == "" {
		text = record.Full
	}

	if strings.TrimSpace(text) == "" {
		return nil, NewInvalidMessageError("GELF record has no short_message")
	}

	msg := NewLogMessage(text, source, now)

	if record.Host != "" {
		msg.Source = record.Host
	}

	if record.Level >= int32(LevelEmergency) && record.Level <= int32(LevelDebug) {
		msg.Level = Level(record.Level)
	}

	if record.TimeUnix > 0 {
		msg.Timestamp = time.UnixMilli(truncateMillis(record.TimeUnix)).UTC()
	}

	if record.Full != "" && record.Full != text {
		msg.Fields[fieldFullMessage] = record.Full
	}

	if record.Facility != "" {
		msg.Fields[fieldFacility] = record.Facility
	}

	for key, raw := range record.Extra {
		name := strings.TrimPrefix(key, "_")
		if name == "" || name == "id" || IsReservedField(name) {
			continue
		}

		value, ok := fieldValue(raw)
		if !ok {
			continue
		}

		if err := msg.AddField(name, value); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

// truncateMillis converts fractional epoch seconds to whole milliseconds, dropping
// sub-millisecond digits. The small epsilon absorbs float error so that 0.123 is
// not read as 0.12299999.
func truncateMillis(seconds float64) int64 {
	return int64(math.Floor(seconds*1e3 + 1e-3))
}

// fieldValue narrows a decoded JSON value to a supported field type. Whole numbers
// become int64, nested objects and arrays are kept as compact JSON text.
func fieldValue(raw any) (any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case string, bool:
		return v, true
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v), true
		}

		return v, true
	default:
		text, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}

		return string(text), true
	}
}
