package flint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/go-flint/flint/cluster"
	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	iutil "github.com/go-flint/flint/internal/util"
	"github.com/go-flint/flint/logging"
	"github.com/go-flint/flint/serializer"
	"github.com/go-flint/flint/stage"
)

// A Context owns the connection to the engine, the process-wide
// configuration, and the temp-directory lifecycle, and exposes the
// driver-facing operations. Create one per process; Stop is terminal.
type Context struct {
	conf     *Config
	conn     engine.Conn
	tempDir  string
	stager   stage.Strategy
	log      *zap.SugaredLogger
	callSite string

	stoppedLock sync.Mutex
	stopped     bool
}

// CreateContext validates configuration, opens the engine connection and
// creates a fresh uniquely named temp directory inside the engine's scratch
// directory, scoped to this Context's lifetime
func CreateContext(conf *Config) (*Context, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	ensureDefaultConfigValues(conf)
	// the call site labels this binding layer in engine-side diagnostics
	callSite := fmt.Sprintf("%s at %s", conf.AppName, iutil.CallSite())
	conn := conf.Conn
	if conn == nil {
		var err error
		conn, err = cluster.Connect(&cluster.ConnOptions{
			Host:       conf.EngineHost,
			Port:       conf.EnginePort,
			RPCTimeout: conf.RPCTimeout,
		})
		if err != nil {
			return nil, err
		}
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	tempDir := filepath.Join(conn.ScratchDir(), fmt.Sprintf("flint-%s", id))
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		conn.Close()
		return nil, err
	}
	var stager stage.Strategy = &stage.FileStrategy{TempDir: tempDir}
	if conf.InMemoryStaging {
		stager = &stage.MemoryStrategy{}
	}
	log := logging.CreateLogger(conf.LogLevel)
	log.Infow("created context", "app", conf.AppName, "tempDir", tempDir, "callSite", callSite)
	return &Context{
		conf:     conf,
		conn:     conn,
		tempDir:  tempDir,
		stager:   stager,
		log:      log,
		callSite: callSite,
	}, nil
}

// Stop closes the engine connection and removes the Context's temp
// directory. Stop is terminal: no further operations are valid afterwards,
// and calling Stop twice is a programming error.
func (c *Context) Stop() error {
	c.stoppedLock.Lock()
	if c.stopped {
		c.stoppedLock.Unlock()
		return errors.ContextStoppedError{}
	}
	c.stopped = true
	c.stoppedLock.Unlock()
	var merr *multierror.Error
	if err := c.conn.Close(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := os.RemoveAll(c.tempDir); err != nil {
		merr = multierror.Append(merr, err)
	}
	if merr.ErrorOrNil() != nil {
		c.log.Errorw("context teardown failed", "errors", iutil.FormatMultiError(merr.Errors))
	}
	c.log.Sync()
	return merr.ErrorOrNil()
}

func (c *Context) ensureRunning() error {
	c.stoppedLock.Lock()
	defer c.stoppedLock.Unlock()
	if c.stopped {
		return errors.ContextStoppedError{}
	}
	return nil
}

// DefaultParallelism returns the engine's suggested partition count
func (c *Context) DefaultParallelism() int {
	return c.conn.DefaultParallelism()
}

// GetSerializer resolves a serializer by name, falling back to the
// configured default name and batch size when name is empty or batchSize is
// zero
func (c *Context) GetSerializer(name string, batchSize int, nested ...Serializer) (Serializer, error) {
	if len(name) == 0 {
		name = c.conf.DefaultSerializer
	}
	if batchSize == 0 {
		batchSize = c.conf.BatchSize
	}
	return serializer.Resolve(name, batchSize, nested...)
}

// Parallelize stages a local collection into numPartitions engine-side
// partitions and returns a Handle bound to the serializer used for encoding.
// numPartitions < 1 selects the engine's default parallelism. Accepts any
// slice or array, or a Range.
func (c *Context) Parallelize(ctx context.Context, collection interface{}, numPartitions int) (*Handle, error) {
	return c.ParallelizeWith(ctx, collection, numPartitions, nil)
}

// StagingOptions override the serializer used for one Parallelize call
type StagingOptions struct {
	Serializer Serializer
}

// ParallelizeWith stages a local collection with explicit staging options
func (c *Context) ParallelizeWith(ctx context.Context, collection interface{}, numPartitions int, opts *StagingOptions) (*Handle, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	values, err := materialize(collection)
	if err != nil {
		return nil, err
	}
	if numPartitions < 1 {
		numPartitions = c.DefaultParallelism()
	}
	var ser Serializer
	if opts != nil && opts.Serializer != nil {
		ser = opts.Serializer
	} else if ser, err = c.GetSerializer("", 0); err != nil {
		return nil, err
	}
	ref, err := c.stager.Stage(ctx, c.conn, ser, values, numPartitions)
	if err != nil {
		return nil, err
	}
	c.log.Debugw("staged collection", "ref", ref, "partitions", numPartitions, "records", len(values))
	return &Handle{ctx: c, ref: ref, ser: ser, numPartitions: numPartitions}, nil
}

// TextFile binds an engine-native line-oriented read of a path to a Handle
// carrying a UTF-8 serializer. No local staging occurs.
func (c *Context) TextFile(ctx context.Context, path string, numPartitions int) (*Handle, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	ref, actual, err := c.conn.TextFile(ctx, path, numPartitions)
	if err != nil {
		return nil, err
	}
	return &Handle{
		ctx:           c,
		ref:           ref,
		ser:           serializer.NewUTF8Serializer(1),
		numPartitions: actual,
	}, nil
}

// WholeTextFiles binds an engine-native whole-file read of a path to a
// Handle whose records are (source path, content) pairs, decoded by a paired
// UTF-8 deserializer
func (c *Context) WholeTextFiles(ctx context.Context, path string, numPartitions int) (*Handle, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	ref, actual, err := c.conn.WholeTextFiles(ctx, path, numPartitions)
	if err != nil {
		return nil, err
	}
	keyDeser := serializer.NewUTF8Serializer(1)
	return &Handle{
		ctx:           c,
		ref:           ref,
		ser:           serializer.NewPairSerializer(keyDeser, serializer.NewUTF8Serializer(1), 1),
		keyDeser:      keyDeser,
		numPartitions: actual,
	}, nil
}

// AddFile distributes local files to the engine's workers
func (c *Context) AddFile(ctx context.Context, paths ...string) error {
	if err := c.ensureRunning(); err != nil {
		return err
	}
	return c.conn.AddFile(ctx, paths...)
}
