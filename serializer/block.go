package serializer

import (
	"bytes"
	"io"
)

// WriteBlocks splits values into numPartitions contiguous, order-preserving
// slices and writes each slice as one length-prefixed partition block. When
// there are fewer values than partitions, trailing blocks are empty. This is
// the wire layout of a staged payload: the engine splits the stream at block
// boundaries without decoding the batches inside.
func WriteBlocks(w io.Writer, ser Serializer, values []interface{}, numPartitions int) error {
	for i := 0; i < numPartitions; i++ {
		start := i * len(values) / numPartitions
		end := (i + 1) * len(values) / numPartitions
		var block bytes.Buffer
		if err := ser.Write(&block, values[start:end]); err != nil {
			return err
		}
		if err := writeFrame(w, block.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// ReadBlocks reads all length-prefixed partition blocks from r, returning
// one encoded payload per partition
func ReadBlocks(r io.Reader) ([][]byte, error) {
	var blocks [][]byte
	for {
		block, err := readFrame(r)
		if err == io.EOF {
			return blocks, nil
		} else if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
}
