// Package engine defines the boundary between the driver binding and the
// external execution engine. The engine itself (scheduling, fault tolerance,
// worker placement) lives behind the Conn interface; this module only stages
// data into it and streams results back out.
package engine

import (
	"context"

	"github.com/go-flint/flint/command"
)

// A Ref identifies a dataset held by the engine. The driver holds no
// exclusive ownership of the referenced data beyond the Ref itself.
type Ref string

// A JobSpec is a pure, lazy description of work: a dataset, the command
// pipeline to apply to it, and the partition subset to run. Partition
// indices are validated by the dispatcher before a JobSpec is built.
type JobSpec struct {
	Ref        Ref
	Command    *command.Command
	Serializer string // structural serializer descriptor for the dataset's records
	Partitions []int
	AllowLocal bool // locality hint only, not a correctness requirement
	Properties map[string]string
	CallSite   string
}

// A ResultIterator streams per-partition job results back to the driver.
// Partitions arrive in engine-chosen order; elements within a partition are
// ordered. Next returns NoMoreResultsError once exhausted.
type ResultIterator interface {
	HasNext() bool
	Next() (partition int, payload []byte, err error)
}

// A Conn is an open connection to an execution engine. All blocking calls
// honor the supplied context for deadlines only; none are cancellable
// mid-flight from this layer.
type Conn interface {
	// DefaultParallelism returns the engine's suggested partition count
	DefaultParallelism() int
	// ScratchDir returns the engine-local scratch directory visible to both
	// the driver and the engine's ingestion path
	ScratchDir() string
	// IngestFile reads a staged payload of numPartitions blocks from a file
	// path, verifying its checksum, and registers it as a dataset
	IngestFile(ctx context.Context, path string, numPartitions int, checksum uint64) (Ref, error)
	// IngestBytes registers a staged in-memory payload as a dataset
	IngestBytes(ctx context.Context, data []byte, numPartitions int, checksum uint64) (Ref, error)
	// TextFile registers an engine-side line-oriented read of a path,
	// returning the dataset and its partition count
	TextFile(ctx context.Context, path string, numPartitions int) (Ref, int, error)
	// WholeTextFiles registers an engine-side whole-file read of a directory,
	// returning (path, content) pair records
	WholeTextFiles(ctx context.Context, path string, numPartitions int) (Ref, int, error)
	// RunJob executes a JobSpec, blocking until the engine has begun
	// streaming results for the requested partitions
	RunJob(ctx context.Context, spec *JobSpec) (ResultIterator, error)
	// Broadcast replicates an encoded value to the engine under an id
	Broadcast(ctx context.Context, id string, data []byte) error
	// AddFile distributes local files to the engine's workers
	AddFile(ctx context.Context, paths ...string) error
	// Close tears down the connection. Terminal.
	Close() error
}
