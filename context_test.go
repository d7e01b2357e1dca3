package flint

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-flint/flint/engine/local"
	"github.com/go-flint/flint/errors"
	"github.com/go-flint/flint/logging"
	"github.com/go-flint/flint/serializer"
)

func createTestContext(t *testing.T) *Context {
	e, err := local.New(&local.Options{DefaultParallelism: 2})
	require.Nil(t, err)
	c, err := CreateContext(&Config{Conn: e, LogLevel: logging.ErrorLevel})
	require.Nil(t, err)
	t.Cleanup(func() {
		if err := c.ensureRunning(); err == nil {
			require.Nil(t, c.Stop())
		}
	})
	return c
}

func TestCreateContextRejectsNilConfig(t *testing.T) {
	_, err := CreateContext(nil)
	require.IsType(t, errors.ConfigError{}, err)
}

func TestCreateContextRequiresEngineTarget(t *testing.T) {
	_, err := CreateContext(&Config{})
	require.IsType(t, errors.ConfigError{}, err)
}

func TestCreateContextRejectsNegativeBatchSize(t *testing.T) {
	e, err := local.New(nil)
	require.Nil(t, err)
	defer e.Close()
	_, err = CreateContext(&Config{Conn: e, BatchSize: -1})
	require.IsType(t, errors.ConfigError{}, err)
}

func TestCreateContextRejectsUnknownDefaultSerializer(t *testing.T) {
	e, err := local.New(nil)
	require.Nil(t, err)
	defer e.Close()
	_, err = CreateContext(&Config{Conn: e, DefaultSerializer: "msgpack"})
	require.IsType(t, errors.ConfigError{}, err)
}

func TestCreateContextCreatesTempDir(t *testing.T) {
	c := createTestContext(t)
	info, err := os.Stat(c.tempDir)
	require.Nil(t, err)
	require.True(t, info.IsDir())
}

func TestStopRemovesTempDirAndIsTerminal(t *testing.T) {
	e, err := local.New(&local.Options{DefaultParallelism: 2})
	require.Nil(t, err)
	c, err := CreateContext(&Config{Conn: e, LogLevel: logging.ErrorLevel})
	require.Nil(t, err)
	tempDir := c.tempDir
	require.Nil(t, c.Stop())
	_, err = os.Stat(tempDir)
	require.True(t, os.IsNotExist(err))
	// operations after Stop fail
	_, err = c.Parallelize(context.Background(), []int{1}, 1)
	require.IsType(t, errors.ContextStoppedError{}, err)
	require.IsType(t, errors.ContextStoppedError{}, c.Stop())
}

func TestDefaultParallelism(t *testing.T) {
	c := createTestContext(t)
	require.Equal(t, 2, c.DefaultParallelism())
}

func TestGetSerializerFallsBackToDefaults(t *testing.T) {
	c := createTestContext(t)
	ser, err := c.GetSerializer("", 0)
	require.Nil(t, err)
	require.Equal(t, "plain:16", ser.Describe())
}

func TestGetSerializerExplicit(t *testing.T) {
	c := createTestContext(t)
	ser, err := c.GetSerializer(serializer.KindUTF8, 4)
	require.Nil(t, err)
	require.Equal(t, "utf8:4", ser.Describe())
}

func TestGetSerializerUnknownName(t *testing.T) {
	c := createTestContext(t)
	_, err := c.GetSerializer("msgpack", 0)
	require.IsType(t, errors.UnknownSerializerError{}, err)
}

func TestParallelizePartitionCount(t *testing.T) {
	c := createTestContext(t)
	for n := 1; n <= 4; n++ {
		h, err := c.Parallelize(context.Background(), Range{Start: 0, End: 10}, n)
		require.Nil(t, err)
		require.Equal(t, n, h.NumPartitions())
	}
}

func TestParallelizeDefaultsPartitionCount(t *testing.T) {
	c := createTestContext(t)
	h, err := c.Parallelize(context.Background(), []int{1, 2, 3}, 0)
	require.Nil(t, err)
	require.Equal(t, c.DefaultParallelism(), h.NumPartitions())
}

func TestParallelizeCleansUpTempFiles(t *testing.T) {
	c := createTestContext(t)
	_, err := c.Parallelize(context.Background(), []int{1, 2, 3}, 2)
	require.Nil(t, err)
	// a failed staging must also leave nothing behind
	_, err = c.ParallelizeWith(context.Background(), []int{1}, 1, &StagingOptions{
		Serializer: serializer.NewUTF8Serializer(1),
	})
	require.NotNil(t, err)
	f, err := os.Open(c.tempDir)
	require.Nil(t, err)
	defer f.Close()
	names, err := f.Readdirnames(-1)
	require.Nil(t, err)
	require.Len(t, names, 0)
}

func TestParallelizeRejectsNonCollections(t *testing.T) {
	c := createTestContext(t)
	_, err := c.Parallelize(context.Background(), 42, 1)
	require.IsType(t, errors.InvalidCollectionError{}, err)
}

func TestRangeMaterialize(t *testing.T) {
	require.Equal(t, []interface{}{0, 1, 2}, Range{Start: 0, End: 3}.Materialize())
	require.Equal(t, []interface{}{0, 2, 4}, Range{Start: 0, End: 5, Step: 2}.Materialize())
	require.Equal(t, []interface{}{3, 2, 1}, Range{Start: 3, End: 0, Step: -1}.Materialize())
}

func TestBroadcastGeneratesID(t *testing.T) {
	e, err := local.New(&local.Options{DefaultParallelism: 2})
	require.Nil(t, err)
	c, err := CreateContext(&Config{Conn: e, LogLevel: logging.ErrorLevel})
	require.Nil(t, err)
	defer c.Stop()

	ref, err := c.Broadcast(context.Background(), []interface{}{"shared", 1}, "")
	require.Nil(t, err)
	require.NotEqual(t, "", ref.ID)
	data, ok := e.BroadcastValue(ref.ID)
	require.True(t, ok)
	decoded, err := serializer.NewPlainSerializer(1).Read(bytes.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, []interface{}{[]interface{}{"shared", 1}}, decoded)
}

func TestBroadcastExplicitID(t *testing.T) {
	e, err := local.New(&local.Options{DefaultParallelism: 2})
	require.Nil(t, err)
	c, err := CreateContext(&Config{Conn: e, LogLevel: logging.ErrorLevel})
	require.Nil(t, err)
	defer c.Stop()

	ref, err := c.Broadcast(context.Background(), 7, "lookup-table")
	require.Nil(t, err)
	require.Equal(t, "lookup-table", ref.ID)
}
