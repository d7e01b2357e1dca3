package serializer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-flint/flint/errors"
)

// PairSerializer encodes key/value records using one nested serializer for
// keys and another for values. Paired sources such as whole-file reads carry
// a PairSerializer so the key shape survives the round trip.
type PairSerializer struct {
	keySerializer   Serializer
	valueSerializer Serializer
	batchSize       int
}

// NewPairSerializer instantiates a new PairSerializer with the given nested
// key and value serializers
func NewPairSerializer(keySerializer Serializer, valueSerializer Serializer, batchSize int) *PairSerializer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &PairSerializer{
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
		batchSize:       batchSize,
	}
}

// Describe returns the structural descriptor of this PairSerializer,
// including the descriptors of both nested serializers
func (s *PairSerializer) Describe() string {
	return fmt.Sprintf("%s(%s,%s):%d", KindPair, s.keySerializer.Describe(), s.valueSerializer.Describe(), s.batchSize)
}

// BatchSize returns the number of values encoded per batch frame
func (s *PairSerializer) BatchSize() int {
	return s.batchSize
}

// KeySerializer returns the nested serializer used for keys
func (s *PairSerializer) KeySerializer() Serializer {
	return s.keySerializer
}

// ValueSerializer returns the nested serializer used for values
func (s *PairSerializer) ValueSerializer() Serializer {
	return s.valueSerializer
}

// Write encodes Pair values onto a write stream: each record is a key frame
// followed by a value frame, each produced by the nested serializer
func (s *PairSerializer) Write(w io.Writer, values []interface{}) error {
	for _, v := range values {
		p, ok := v.(Pair)
		if !ok {
			return errors.InvalidCollectionError{Type: fmt.Sprintf("%T", v)}
		}
		var key, value bytes.Buffer
		if err := s.keySerializer.Write(&key, []interface{}{p.Key}); err != nil {
			return err
		}
		if err := writeFrame(w, key.Bytes()); err != nil {
			return err
		}
		if err := s.valueSerializer.Write(&value, []interface{}{p.Value}); err != nil {
			return err
		}
		if err := writeFrame(w, value.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes all Pair values from a read stream, in order
func (s *PairSerializer) Read(r io.Reader) ([]interface{}, error) {
	var values []interface{}
	for {
		keyFrame, err := readFrame(r)
		if err == io.EOF {
			return values, nil
		} else if err != nil {
			return nil, err
		}
		valueFrame, err := readFrame(r)
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
		keys, err := s.keySerializer.Read(bytes.NewReader(keyFrame))
		if err != nil {
			return nil, err
		}
		vals, err := s.valueSerializer.Read(bytes.NewReader(valueFrame))
		if err != nil {
			return nil, err
		}
		if len(keys) != 1 || len(vals) != 1 {
			return nil, io.ErrUnexpectedEOF
		}
		values = append(values, Pair{Key: keys[0], Value: vals[0]})
	}
}
