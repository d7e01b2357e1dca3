// Package local provides an in-process implementation of the engine
// boundary. It backs single-node use and the test suite: datasets live in
// memory, partitions execute on bounded goroutines, and text sources read
// the local filesystem directly.
package local

import (
	"bytes"
	"context"
	"io/ioutil"
	"runtime"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/docker/docker/pkg/locker"
	uuid "github.com/gofrs/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/go-flint/flint/command"
	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	iutil "github.com/go-flint/flint/internal/util"
	"github.com/go-flint/flint/serializer"
)

// Options configure a local Engine
type Options struct {
	DefaultParallelism int    // suggested partition count for unsized datasets
	ScratchDir         string // scratch location; a temp dir is created if empty
	MaxConcurrency     int64  // maximum partitions executing at once
}

func ensureDefaultOptionsValues(opts *Options) {
	if opts.DefaultParallelism == 0 {
		opts.DefaultParallelism = runtime.NumCPU()
	}
	if opts.MaxConcurrency == 0 {
		opts.MaxConcurrency = int64(runtime.NumCPU())
	}
}

// Engine is an in-process engine.Conn
type Engine struct {
	opts           *Options
	scratchDir     string
	ownsScratchDir bool
	sem            *semaphore.Weighted
	locks          *locker.Locker
	datasetsLock   sync.Mutex
	datasets       map[engine.Ref][][]byte
	broadcastsLock sync.Mutex
	broadcasts     map[string][]byte
}

// New produces a local Engine
func New(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = &Options{}
	}
	ensureDefaultOptionsValues(opts)
	scratchDir := opts.ScratchDir
	ownsScratchDir := false
	if scratchDir == "" {
		var err error
		scratchDir, err = ioutil.TempDir("", "flint-local-engine")
		if err != nil {
			return nil, err
		}
		ownsScratchDir = true
	}
	return &Engine{
		opts:           opts,
		scratchDir:     scratchDir,
		ownsScratchDir: ownsScratchDir,
		sem:            semaphore.NewWeighted(opts.MaxConcurrency),
		locks:          locker.New(),
		datasets:       make(map[engine.Ref][][]byte),
		broadcasts:     make(map[string][]byte),
	}, nil
}

// DefaultParallelism returns the engine's suggested partition count
func (e *Engine) DefaultParallelism() int {
	return e.opts.DefaultParallelism
}

// ScratchDir returns the engine's scratch directory
func (e *Engine) ScratchDir() string {
	return e.scratchDir
}

// IngestFile reads a staged payload from a file path, verifies its checksum
// and registers its partition blocks as a dataset
func (e *Engine) IngestFile(ctx context.Context, path string, numPartitions int, checksum uint64) (engine.Ref, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.EngineError{Op: "IngestFile", Cause: err}
	}
	return e.ingest("IngestFile", data, numPartitions, checksum)
}

// IngestBytes verifies and registers a staged in-memory payload as a dataset
func (e *Engine) IngestBytes(ctx context.Context, data []byte, numPartitions int, checksum uint64) (engine.Ref, error) {
	return e.ingest("IngestBytes", data, numPartitions, checksum)
}

func (e *Engine) ingest(op string, data []byte, numPartitions int, checksum uint64) (engine.Ref, error) {
	if actual := xxhash.Sum64(data); actual != checksum {
		return "", errors.EngineError{Op: op, Cause: errors.ChecksumMismatchError{Expected: checksum, Actual: actual}}
	}
	parts, err := serializer.ReadBlocks(bytes.NewReader(data))
	if err != nil {
		return "", errors.EngineError{Op: op, Cause: err}
	}
	if len(parts) != numPartitions {
		return "", errors.EngineError{Op: op, Cause: errors.InvalidPartitionsError{
			Reason: "payload block count does not match requested partition count",
		}}
	}
	return e.registerDataset(parts), nil
}

func (e *Engine) registerDataset(parts [][]byte) engine.Ref {
	id := uuid.Must(uuid.NewV4())
	ref := engine.Ref(id.String())
	e.datasetsLock.Lock()
	defer e.datasetsLock.Unlock()
	e.datasets[ref] = parts
	return ref
}

func (e *Engine) lookupDataset(ref engine.Ref) ([][]byte, error) {
	e.datasetsLock.Lock()
	defer e.datasetsLock.Unlock()
	parts, ok := e.datasets[ref]
	if !ok {
		return nil, errors.UnknownDatasetError{Ref: string(ref)}
	}
	return parts, nil
}

// RunJob applies a JobSpec's command pipeline to the requested partitions of
// a registered dataset, one bounded goroutine per partition, and returns an
// iterator over the re-encoded results in completion order
func (e *Engine) RunJob(ctx context.Context, spec *engine.JobSpec) (engine.ResultIterator, error) {
	// serialize job runs against the same dataset
	e.locks.Lock(string(spec.Ref))
	defer e.locks.Unlock(string(spec.Ref))
	parts, err := e.lookupDataset(spec.Ref)
	if err != nil {
		return nil, errors.EngineError{Op: "RunJob", Cause: err}
	}
	ser, err := serializer.FromDescriptor(spec.Serializer)
	if err != nil {
		return nil, errors.EngineError{Op: "RunJob", Cause: err}
	}
	for _, p := range spec.Partitions {
		if p < 0 || p >= len(parts) {
			return nil, errors.EngineError{Op: "RunJob", Cause: errors.InvalidPartitionsError{
				Reason: "partition index out of range",
			}}
		}
	}
	var wg sync.WaitGroup
	var resultsLock sync.Mutex
	results := make([]resultEntry, 0, len(spec.Partitions))
	asyncErrors := iutil.CreateAsyncErrorChannel(len(spec.Partitions) + 1)
	for _, p := range spec.Partitions {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			asyncErrors <- err
			break
		}
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			defer e.sem.Release(1)
			payload, err := e.runPartition(ser, spec.Command, parts[p])
			if err != nil {
				asyncErrors <- err
				return
			}
			resultsLock.Lock()
			defer resultsLock.Unlock()
			results = append(results, resultEntry{partition: p, payload: payload})
		}(p)
	}
	if err := iutil.WaitAndFetchError(&wg, asyncErrors); err != nil {
		return nil, errors.EngineError{Op: "RunJob", Cause: err}
	}
	return &resultIterator{entries: results}, nil
}

func (e *Engine) runPartition(ser serializer.Serializer, cmd *command.Command, payload []byte) ([]byte, error) {
	if cmd == nil {
		return payload, nil
	}
	values, err := ser.Read(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	out, err := cmd.Apply(values)
	if err != nil {
		return nil, err
	}
	var encoded bytes.Buffer
	if err := ser.Write(&encoded, out); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

// Broadcast stores an encoded value under an id
func (e *Engine) Broadcast(ctx context.Context, id string, data []byte) error {
	e.broadcastsLock.Lock()
	defer e.broadcastsLock.Unlock()
	e.broadcasts[id] = data
	return nil
}

// BroadcastValue fetches a previously broadcast payload
func (e *Engine) BroadcastValue(id string) ([]byte, bool) {
	e.broadcastsLock.Lock()
	defer e.broadcastsLock.Unlock()
	data, ok := e.broadcasts[id]
	return data, ok
}

// Close releases all datasets and the engine-owned scratch directory
func (e *Engine) Close() error {
	e.datasetsLock.Lock()
	e.datasets = make(map[engine.Ref][][]byte)
	e.datasetsLock.Unlock()
	if e.ownsScratchDir {
		return removeScratchDir(e.scratchDir)
	}
	return nil
}
