package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	msgpack "github.com/hashicorp/go-msgpack/v2/codec"

	"github.com/architeacher/svc-log-forwarder/internal/domain"
)

const contentType = "application/x-msgpack"

var errNotLogMessage = errors.New("message is not a *domain.LogMessage")

// radioMessage is the wire layout: a four element array of string, long and
// double fields keyed by name, followed by the timestamp in epoch milliseconds.
type radioMessage struct {
	_struct bool `codec:",toarray"`

	Strings   map[string]string
	Longs     map[string]int64
	Doubles   map[string]float64
	Timestamp int64
}

// RadioCodec encodes log messages as msgpack radio messages. A codec keeps its
// own handle and is not meant to be shared between goroutines.
type RadioCodec struct {
	handle *msgpack.MsgpackHandle
}

func NewRadioCodec() *RadioCodec {
	handle := &msgpack.MsgpackHandle{}
	handle.WriteExt = true

	return &RadioCodec{handle: handle}
}

// Serialize implements queue.Serializer.
func (c *RadioCodec) Serialize(msg any) ([]byte, error) {
	logMsg, ok := msg.(*domain.LogMessage)
	if !ok || logMsg == nil {
		return nil, fmt.Errorf("%w: got %T", errNotLogMessage, msg)
	}

	if err := logMsg.Validate(); err != nil {
		return nil, err
	}

	radio, err := toRadio(logMsg)
	if err != nil {
		return nil, err
	}

	var out []byte
	if err := msgpack.NewEncoderBytes(&out, c.handle).Encode(radio); err != nil {
		return nil, fmt.Errorf("could not encode radio message: %w", err)
	}

	return out, nil
}

func (c *RadioCodec) ContentType() string {
	return contentType
}

// Decode reads a payload produced by Serialize.
func (c *RadioCodec) Decode(payload []byte) (Radio, error) {
	var radio radioMessage
	if err := msgpack.NewDecoderBytes(payload, c.handle).Decode(&radio); err != nil {
		return Radio{}, fmt.Errorf("could not decode radio message: %w", err)
	}

	return Radio{
		Strings:   radio.Strings,
		Longs:     radio.Longs,
		Doubles:   radio.Doubles,
		Timestamp: time.UnixMilli(radio.Timestamp).UTC(),
	}, nil
}

// Radio is the decoded form of a radio message.
type Radio struct {
	Strings   map[string]string
	Longs     map[string]int64
	Doubles   map[string]float64
	Timestamp time.Time
}

func toRadio(msg *domain.LogMessage) (radioMessage, error) {
	radio := radioMessage{
		Strings:   make(map[string]string),
		Longs:     make(map[string]int64),
		Doubles:   make(map[string]float64),
		Timestamp: msg.Timestamp.UnixMilli(),
	}

	for key, value := range msg.AllFields() {
		if key == domain.FieldTimestamp {
			continue
		}

		if err := radio.put(key, value); err != nil {
			return radioMessage{}, err
		}
	}

	return radio, nil
}

func (r *radioMessage) put(key string, value any) error {
	switch v := value.(type) {
	case string:
		r.Strings[key] = v
	case bool:
		r.Strings[key] = strconv.FormatBool(v)
	case time.Time:
		r.Strings[key] = v.UTC().Format(time.RFC3339Nano)
	case int:
		r.Longs[key] = int64(v)
	case int8:
		r.Longs[key] = int64(v)
	case int16:
		r.Longs[key] = int64(v)
	case int32:
		r.Longs[key] = int64(v)
	case int64:
		r.Longs[key] = v
	case uint:
		return r.putUnsigned(key, uint64(v))
	case uint8:
		r.Longs[key] = int64(v)
	case uint16:
		r.Longs[key] = int64(v)
	case uint32:
		r.Longs[key] = int64(v)
	case uint64:
		return r.putUnsigned(key, v)
	case float32:
		r.Doubles[key] = float64(v)
	case float64:
		r.Doubles[key] = v
	default:
		return domain.NewUnsupportedFieldTypeError(key, value)
	}

	return nil
}

func (r *radioMessage) putUnsigned(key string, v uint64) error {
	if v > math.MaxInt64 {
		return domain.NewInvalidMessageError(fmt.Sprintf("field %q overflows a long", key))
	}

	r.Longs[key] = int64(v)

	return nil
}
