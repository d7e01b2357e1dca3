// Package stage converts materialized local collections into the partitioned,
// serialized payloads the engine ingests. File-based staging is the default:
// it bounds driver memory by the serializer's batch size rather than the
// collection size. In-memory staging must be selected explicitly.
package stage

import (
	"context"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/serializer"
)

// A Strategy encodes a sequence of values into numPartitions partition blocks
// and hands the payload to the engine, returning the resulting dataset Ref.
// Encoding is strictly sequential and order-preserving.
type Strategy interface {
	Stage(ctx context.Context, conn engine.Conn, ser serializer.Serializer, values []interface{}, numPartitions int) (engine.Ref, error)
}
