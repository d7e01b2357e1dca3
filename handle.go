package flint

import (
	"github.com/go-flint/flint/command"
	"github.com/go-flint/flint/engine"
)

// A Handle is a driver-side reference to a dataset materialized or scheduled
// on the engine, bound to the serializer which must be used to decode its
// elements. Handles are immutable; the underlying dataset is owned by the
// engine and reclaimed by engine-side garbage collection.
type Handle struct {
	ctx           *Context
	ref           engine.Ref
	ser           Serializer
	keyDeser      Serializer // set for paired sources such as WholeTextFiles
	numPartitions int
	pipeline      *command.Command // pending lazy pipeline, nil for source datasets
}

// Ref returns the engine-side reference of this Handle's dataset
func (h *Handle) Ref() engine.Ref {
	return h.ref
}

// NumPartitions returns the partition count of this Handle's dataset
func (h *Handle) NumPartitions() int {
	return h.numPartitions
}

// Serializer returns the serializer bound to this Handle's elements
func (h *Handle) Serializer() Serializer {
	return h.ser
}

// KeyDeserializer returns the key-side deserializer for paired sources, or
// nil for plain sources
func (h *Handle) KeyDeserializer() Serializer {
	return h.keyDeser
}

// WithCommand produces a new Handle describing this Handle's dataset with an
// additional pipeline stage applied. Purely lazy: nothing executes until a
// job runs against the returned Handle.
func (h *Handle) WithCommand(op Operation, args ...interface{}) *Handle {
	return h.withStage(op.Name(), args...)
}

func (h *Handle) withStage(op string, args ...interface{}) *Handle {
	var pipeline *command.Command
	if h.pipeline == nil {
		pipeline = command.New(op, args...)
	} else {
		pipeline = h.pipeline.Then(op, args...)
	}
	return &Handle{
		ctx:           h.ctx,
		ref:           h.ref,
		ser:           h.ser,
		keyDeser:      h.keyDeser,
		numPartitions: h.numPartitions,
		pipeline:      pipeline,
	}
}
