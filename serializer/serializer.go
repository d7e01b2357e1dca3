// Package serializer defines the codecs used to move local values to and from
// the byte streams exchanged with the engine. The serializer which encodes a
// dataset must be structurally identical to the one which decodes it, so every
// Serializer exposes a structural descriptor which travels with submitted jobs
// and is resolved back into an identical instance on the engine side.
package serializer

import (
	"encoding/binary"
	"encoding/gob"
	"io"
)

func init() {
	gob.Register([]interface{}{})
	gob.Register(Pair{})
}

// A Serializer converts an ordered sequence of local values to and from a
// byte stream
type Serializer interface {
	Describe() string                              // Describe returns the structural descriptor of this Serializer
	BatchSize() int                                // BatchSize returns the number of values encoded per batch frame
	Write(w io.Writer, values []interface{}) error // Write encodes values onto a write stream, in order
	Read(r io.Reader) ([]interface{}, error)       // Read decodes all values from a read stream, in order
}

// Pair is a key/value record produced by paired sources such as whole-file
// reads, where the key is the source path and the value the file content
type Pair struct {
	Key   interface{}
	Value interface{}
}

// writeFrame writes a length-prefixed frame to w
func writeFrame(w io.Writer, data []byte) error {
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(data)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// readFrame reads a length-prefixed frame from r. A clean end of stream
// returns io.EOF; a truncated frame returns io.ErrUnexpectedEOF.
func readFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	data := make([]byte, binary.LittleEndian.Uint32(prefix[:]))
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return data, nil
}
