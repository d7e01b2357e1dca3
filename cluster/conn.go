// Package cluster connects the driver to a remote execution engine over
// gRPC. It implements the engine boundary defined in the engine package; the
// engine's own scheduling and fault tolerance live on the far side of the
// connection.
package cluster

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tidwall/gjson"
	"google.golang.org/grpc"

	"github.com/go-flint/flint/command"
	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	pb "github.com/go-flint/flint/internal/rpc"
	iutil "github.com/go-flint/flint/internal/util"
)

// ConnOptions are options for a connection to a remote engine
type ConnOptions struct {
	Host        string        // [REQUIRED] hostname of the engine
	Port        int           // port of the engine
	DialTimeout time.Duration // how long to wait for the initial handshake
	RPCTimeout  time.Duration // timeout for unary RPC calls
}

func ensureDefaultConnOptionsValues(opts *ConnOptions) error {
	if len(opts.Host) == 0 {
		return errors.ConfigError{Field: "Host", Message: "must be the address of the engine"}
	}
	if opts.Port == 0 {
		opts.Port = 7077
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = time.Duration(5) * time.Second
	}
	if opts.RPCTimeout == 0 {
		opts.RPCTimeout = time.Duration(5) * time.Second
	}
	return nil
}

func (o *ConnOptions) connectionString() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// conn is a gRPC-backed engine.Conn
type conn struct {
	opts               *ConnOptions
	cc                 *grpc.ClientConn
	client             pb.EngineServiceClient
	scratchDir         string
	defaultParallelism int
}

// Connect dials a remote engine and performs the handshake which reports the
// engine's scratch directory and suggested parallelism
func Connect(opts *ConnOptions) (engine.Conn, error) {
	if err := ensureDefaultConnOptionsValues(opts); err != nil {
		return nil, err
	}
	cc, err := grpc.Dial(opts.connectionString(), grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("fail to dial: %v", err)
	}
	client := pb.NewEngineServiceClient(cc)
	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	resp, err := client.Handshake(ctx, &pb.MHandshakeRequest{CallSite: iutil.CallSite()})
	if err != nil {
		cc.Close()
		return nil, errors.EngineError{Op: "Handshake", Cause: err}
	}
	info := gjson.Parse(resp.GetInfoJson())
	return &conn{
		opts:               opts,
		cc:                 cc,
		client:             client,
		scratchDir:         info.Get("scratch_dir").String(),
		defaultParallelism: int(info.Get("default_parallelism").Int()),
	}, nil
}

// DefaultParallelism returns the partition count suggested by the engine
// during the handshake
func (c *conn) DefaultParallelism() int {
	return c.defaultParallelism
}

// ScratchDir returns the scratch directory reported by the engine during the
// handshake
func (c *conn) ScratchDir() string {
	return c.scratchDir
}

func (c *conn) rpcContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.opts.RPCTimeout)
}

// IngestFile asks the engine to read and partition a staged payload by path
func (c *conn) IngestFile(ctx context.Context, path string, numPartitions int, checksum uint64) (engine.Ref, error) {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	resp, err := c.client.IngestFile(rctx, &pb.MIngestFileRequest{
		Path:          path,
		NumPartitions: int32(numPartitions),
		Checksum:      checksum,
	})
	if err != nil {
		return "", errors.EngineError{Op: "IngestFile", Cause: err}
	}
	return engine.Ref(resp.GetRef()), nil
}

// IngestBytes hands a staged in-memory payload to the engine
func (c *conn) IngestBytes(ctx context.Context, data []byte, numPartitions int, checksum uint64) (engine.Ref, error) {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	resp, err := c.client.IngestBytes(rctx, &pb.MIngestBytesRequest{
		Data:          data,
		NumPartitions: int32(numPartitions),
		Checksum:      checksum,
	})
	if err != nil {
		return "", errors.EngineError{Op: "IngestBytes", Cause: err}
	}
	return engine.Ref(resp.GetRef()), nil
}

// TextFile registers an engine-native line-oriented read
func (c *conn) TextFile(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	resp, err := c.client.TextFile(rctx, &pb.MTextFileRequest{
		Path:          path,
		NumPartitions: int32(numPartitions),
	})
	if err != nil {
		return "", 0, errors.EngineError{Op: "TextFile", Cause: err}
	}
	return engine.Ref(resp.GetRef()), int(resp.GetNumPartitions()), nil
}

// WholeTextFiles registers an engine-native whole-file read
func (c *conn) WholeTextFiles(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	resp, err := c.client.WholeTextFiles(rctx, &pb.MTextFileRequest{
		Path:          path,
		NumPartitions: int32(numPartitions),
	})
	if err != nil {
		return "", 0, errors.EngineError{Op: "WholeTextFiles", Cause: err}
	}
	return engine.Ref(resp.GetRef()), int(resp.GetNumPartitions()), nil
}

// RunJob submits a JobSpec and blocks until the engine begins streaming
// per-partition results. Job runs are not bounded by the unary RPC timeout.
func (c *conn) RunJob(ctx context.Context, spec *engine.JobSpec) (engine.ResultIterator, error) {
	encodedCommand, err := command.Encode(spec.Command)
	if err != nil {
		return nil, err
	}
	partitions := make([]int32, len(spec.Partitions))
	for i, p := range spec.Partitions {
		partitions[i] = int32(p)
	}
	stream, err := c.client.RunJob(ctx, &pb.MRunJobRequest{
		Ref:        string(spec.Ref),
		Command:    encodedCommand,
		Serializer: spec.Serializer,
		Partitions: partitions,
		AllowLocal: spec.AllowLocal,
		Properties: spec.Properties,
		CallSite:   spec.CallSite,
	})
	if err != nil {
		return nil, errors.EngineError{Op: "RunJob", Cause: err}
	}
	return &streamIterator{stream: stream}, nil
}

// Broadcast replicates an encoded value to the engine
func (c *conn) Broadcast(ctx context.Context, id string, data []byte) error {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	if _, err := c.client.Broadcast(rctx, &pb.MBroadcastRequest{Id: id, Data: data}); err != nil {
		return errors.EngineError{Op: "Broadcast", Cause: err}
	}
	return nil
}

// AddFile distributes local files to the engine's workers
func (c *conn) AddFile(ctx context.Context, paths ...string) error {
	rctx, cancel := c.rpcContext(ctx)
	defer cancel()
	if _, err := c.client.AddFile(rctx, &pb.MAddFileRequest{Paths: paths}); err != nil {
		return errors.EngineError{Op: "AddFile", Cause: err}
	}
	return nil
}

// Close tears down the connection to the engine
func (c *conn) Close() error {
	return c.cc.Close()
}

// streamIterator adapts a result stream to engine.ResultIterator
type streamIterator struct {
	stream  pb.EngineService_RunJobClient
	pending *pb.MPartitionResult
	err     error
	done    bool
}

// HasNext returns true iff there is another partition result remaining
func (it *streamIterator) HasNext() bool {
	if it.done {
		return false
	}
	if it.pending != nil || it.err != nil {
		return true
	}
	msg, err := it.stream.Recv()
	if err == io.EOF {
		it.done = true
		return false
	} else if err != nil {
		it.err = errors.EngineError{Op: "RunJob", Cause: err}
		return true
	}
	it.pending = msg
	return true
}

// Next returns the next partition result
func (it *streamIterator) Next() (int, []byte, error) {
	if !it.HasNext() {
		return 0, nil, errors.NoMoreResultsError{}
	}
	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true
		return 0, nil, err
	}
	msg := it.pending
	it.pending = nil
	return int(msg.GetPartition()), msg.GetPayload(), nil
}
