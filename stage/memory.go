package stage

import (
	"bytes"
	"context"
	"io"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/serializer"
)

// MemoryStrategy stages a collection through an in-memory buffer handed
// directly to the engine. The buffer grows with the collection, so this path
// suits runtimes with an efficient in-process handoff and modest inputs.
type MemoryStrategy struct{}

// Stage encodes values into a buffer and hands it to the engine's
// byte-ingestion primitive
func (s *MemoryStrategy) Stage(ctx context.Context, conn engine.Conn, ser serializer.Serializer, values []interface{}, numPartitions int) (engine.Ref, error) {
	var payload bytes.Buffer
	checksum := xxhash.New()
	if err := serializer.WriteBlocks(io.MultiWriter(&payload, checksum), ser, values, numPartitions); err != nil {
		return "", err
	}
	return conn.IngestBytes(ctx, payload.Bytes(), numPartitions, checksum.Sum64())
}
