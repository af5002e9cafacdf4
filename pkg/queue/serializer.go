package queue

import (
	"encoding/json"
	"fmt"
)

// Serializer turns a domain message into the bytes published on the wire.
// Implementations may keep state; a Publisher never shares its serializer.
type Serializer interface {
	Serialize(msg any) ([]byte, error)
	ContentType() string
}

// SerializerFunc adapts a plain function to Serializer.
type SerializerFunc func(msg any) ([]byte, error)

func (f SerializerFunc) Serialize(msg any) ([]byte, error) {
	return f(msg)
}

func (f SerializerFunc) ContentType() string {
	return "application/octet-stream"
}

// JSONSerializer encodes messages with encoding/json.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(msg any) ([]byte, error) {
	content, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("could not marshal message: %w", err)
	}

	return content, nil
}

func (JSONSerializer) ContentType() string {
	return "application/json"
}
