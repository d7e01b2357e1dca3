package serializer

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/pierrec/lz4"
)

// PlainSerializer encodes arbitrary gob-encodable values in lz4-compressed
// batches. This is the default codec for staged collections.
type PlainSerializer struct {
	batchSize int
}

// NewPlainSerializer instantiates a new PlainSerializer
func NewPlainSerializer(batchSize int) *PlainSerializer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &PlainSerializer{batchSize: batchSize}
}

// Describe returns the structural descriptor of this PlainSerializer
func (s *PlainSerializer) Describe() string {
	return fmt.Sprintf("%s:%d", KindPlain, s.batchSize)
}

// BatchSize returns the number of values encoded per batch frame
func (s *PlainSerializer) BatchSize() int {
	return s.batchSize
}

// Write encodes values onto a write stream in batches of at most BatchSize
func (s *PlainSerializer) Write(w io.Writer, values []interface{}) error {
	for start := 0; start < len(values); start += s.batchSize {
		end := start + s.batchSize
		if end > len(values) {
			end = len(values)
		}
		var encoded bytes.Buffer
		compressor := lz4.NewWriter(&encoded)
		if err := gob.NewEncoder(compressor).Encode(values[start:end]); err != nil {
			return err
		}
		if err := compressor.Close(); err != nil {
			return err
		}
		if err := writeFrame(w, encoded.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes all values from a read stream, in order
func (s *PlainSerializer) Read(r io.Reader) ([]interface{}, error) {
	var values []interface{}
	for {
		frame, err := readFrame(r)
		if err == io.EOF {
			return values, nil
		} else if err != nil {
			return nil, err
		}
		var batch []interface{}
		decompressor := lz4.NewReader(bytes.NewReader(frame))
		if err := gob.NewDecoder(decompressor).Decode(&batch); err != nil {
			return nil, err
		}
		values = append(values, batch...)
	}
}
