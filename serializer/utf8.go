package serializer

import (
	"fmt"
	"io"

	"github.com/go-flint/flint/errors"
)

// UTF8Serializer encodes string values as length-prefixed UTF-8 frames, one
// value per frame. It is the codec bound to text-file sources.
type UTF8Serializer struct {
	batchSize int
}

// NewUTF8Serializer instantiates a new UTF8Serializer
func NewUTF8Serializer(batchSize int) *UTF8Serializer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &UTF8Serializer{batchSize: batchSize}
}

// Describe returns the structural descriptor of this UTF8Serializer
func (s *UTF8Serializer) Describe() string {
	return fmt.Sprintf("%s:%d", KindUTF8, s.batchSize)
}

// BatchSize returns the number of values encoded per batch frame
func (s *UTF8Serializer) BatchSize() int {
	return s.batchSize
}

// Write encodes string values onto a write stream, in order
func (s *UTF8Serializer) Write(w io.Writer, values []interface{}) error {
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			return errors.InvalidCollectionError{Type: fmt.Sprintf("%T", v)}
		}
		if err := writeFrame(w, []byte(str)); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes all string values from a read stream, in order
func (s *UTF8Serializer) Read(r io.Reader) ([]interface{}, error) {
	var values []interface{}
	for {
		frame, err := readFrame(r)
		if err == io.EOF {
			return values, nil
		} else if err != nil {
			return nil, err
		}
		values = append(values, string(frame))
	}
}
