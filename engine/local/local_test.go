package local

import (
	"bytes"
	"context"
	goerrors "errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-flint/flint/command"
	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	"github.com/go-flint/flint/serializer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testDouble = command.RegisterOp("local-test-double", func(v interface{}, args ...interface{}) ([]interface{}, error) {
	return []interface{}{v.(int) * 2}, nil
})

func createTestEngine(t *testing.T) *Engine {
	e, err := New(&Options{DefaultParallelism: 2})
	require.Nil(t, err)
	t.Cleanup(func() { require.Nil(t, e.Close()) })
	return e
}

func stagePayload(t *testing.T, ser serializer.Serializer, values []interface{}, numPartitions int) ([]byte, uint64) {
	var buf bytes.Buffer
	err := serializer.WriteBlocks(&buf, ser, values, numPartitions)
	require.Nil(t, err)
	return buf.Bytes(), xxhash.Sum64(buf.Bytes())
}

func drain(t *testing.T, iter engine.ResultIterator, ser serializer.Serializer) map[int][]interface{} {
	results := make(map[int][]interface{})
	for iter.HasNext() {
		p, payload, err := iter.Next()
		require.Nil(t, err)
		values, err := ser.Read(bytes.NewReader(payload))
		require.Nil(t, err)
		results[p] = values
	}
	return results
}

func TestIngestBytesAndRunIdentity(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(2)
	payload, checksum := stagePayload(t, ser, []interface{}{1, 2, 3, 4}, 2)
	ref, err := e.IngestBytes(context.Background(), payload, 2, checksum)
	require.Nil(t, err)

	iter, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Command:    command.New(command.Identity),
		Serializer: ser.Describe(),
		Partitions: []int{0, 1},
	})
	require.Nil(t, err)
	results := drain(t, iter, ser)
	require.Equal(t, []interface{}{1, 2}, results[0])
	require.Equal(t, []interface{}{3, 4}, results[1])
}

func TestIngestFile(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(4)
	payload, checksum := stagePayload(t, ser, []interface{}{"a", "b", "c"}, 3)
	path := filepath.Join(e.ScratchDir(), "staged")
	require.Nil(t, ioutil.WriteFile(path, payload, 0644))
	defer os.Remove(path)

	ref, err := e.IngestFile(context.Background(), path, 3, checksum)
	require.Nil(t, err)
	iter, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Serializer: ser.Describe(),
		Partitions: []int{2},
	})
	require.Nil(t, err)
	results := drain(t, iter, ser)
	require.Equal(t, []interface{}{"c"}, results[2])
}

func TestIngestChecksumMismatch(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(1)
	payload, checksum := stagePayload(t, ser, []interface{}{1}, 1)

	_, err := e.IngestBytes(context.Background(), payload, 1, checksum+1)
	require.NotNil(t, err)
	var mismatch errors.ChecksumMismatchError
	require.True(t, goerrors.As(err, &mismatch))
	// nothing was registered
	e.datasetsLock.Lock()
	require.Len(t, e.datasets, 0)
	e.datasetsLock.Unlock()
}

func TestIngestPartitionCountMismatch(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(1)
	payload, checksum := stagePayload(t, ser, []interface{}{1, 2}, 2)
	_, err := e.IngestBytes(context.Background(), payload, 3, checksum)
	require.NotNil(t, err)
}

func TestRunJobAppliesPipeline(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(2)
	payload, checksum := stagePayload(t, ser, []interface{}{1, 2, 3, 4, 5, 6}, 3)
	ref, err := e.IngestBytes(context.Background(), payload, 3, checksum)
	require.Nil(t, err)

	iter, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Command:    testDouble.Command(),
		Serializer: ser.Describe(),
		Partitions: []int{0, 2},
	})
	require.Nil(t, err)
	results := drain(t, iter, ser)
	require.Len(t, results, 2)
	require.Equal(t, []interface{}{2, 4}, results[0])
	require.Equal(t, []interface{}{10, 12}, results[2])
}

func TestRunJobUnknownDataset(t *testing.T) {
	e := createTestEngine(t)
	_, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        "no-such-ref",
		Serializer: "plain:1",
	})
	require.NotNil(t, err)
	require.IsType(t, errors.EngineError{}, err)
}

func TestRunJobOutOfRangePartition(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(1)
	payload, checksum := stagePayload(t, ser, []interface{}{1}, 1)
	ref, err := e.IngestBytes(context.Background(), payload, 1, checksum)
	require.Nil(t, err)
	_, err = e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Serializer: ser.Describe(),
		Partitions: []int{1},
	})
	require.NotNil(t, err)
}

func TestRunJobOperationErrorSurfaces(t *testing.T) {
	e := createTestEngine(t)
	ser := serializer.NewPlainSerializer(1)
	payload, checksum := stagePayload(t, ser, []interface{}{1}, 1)
	ref, err := e.IngestBytes(context.Background(), payload, 1, checksum)
	require.Nil(t, err)
	_, err = e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Command:    command.New("never-registered-op"),
		Serializer: ser.Describe(),
		Partitions: []int{0},
	})
	require.NotNil(t, err)
	require.IsType(t, errors.EngineError{}, err)
}

func TestTextFile(t *testing.T) {
	e := createTestEngine(t)
	dir, err := ioutil.TempDir("", "flint-local-text")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "lines.txt"), []byte("one\ntwo\nthree\n"), 0644))

	ref, parts, err := e.TextFile(context.Background(), filepath.Join(dir, "lines.txt"), 1)
	require.Nil(t, err)
	require.Equal(t, 1, parts)
	ser := serializer.NewUTF8Serializer(1)
	iter, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Serializer: ser.Describe(),
		Partitions: []int{0},
	})
	require.Nil(t, err)
	results := drain(t, iter, ser)
	require.Equal(t, []interface{}{"one", "two", "three"}, results[0])
}

func TestWholeTextFiles(t *testing.T) {
	e := createTestEngine(t)
	dir, err := ioutil.TempDir("", "flint-local-whole")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta\nlines"), 0644))

	ref, parts, err := e.WholeTextFiles(context.Background(), dir, 1)
	require.Nil(t, err)
	require.Equal(t, 1, parts)
	ser := serializer.NewPairSerializer(serializer.NewUTF8Serializer(1), serializer.NewUTF8Serializer(1), 1)
	iter, err := e.RunJob(context.Background(), &engine.JobSpec{
		Ref:        ref,
		Serializer: ser.Describe(),
		Partitions: []int{0},
	})
	require.Nil(t, err)
	results := drain(t, iter, ser)
	require.Equal(t, []interface{}{
		serializer.Pair{Key: filepath.Join(dir, "a.txt"), Value: "alpha"},
		serializer.Pair{Key: filepath.Join(dir, "b.txt"), Value: "beta\nlines"},
	}, results[0])
}

func TestBroadcastRoundTrip(t *testing.T) {
	e := createTestEngine(t)
	require.Nil(t, e.Broadcast(context.Background(), "b1", []byte("payload")))
	data, ok := e.BroadcastValue("b1")
	require.True(t, ok)
	require.Equal(t, []byte("payload"), data)
}

func TestAddFile(t *testing.T) {
	e := createTestEngine(t)
	src, err := ioutil.TempFile("", "flint-addfile")
	require.Nil(t, err)
	defer os.Remove(src.Name())
	_, err = src.WriteString("distributed")
	require.Nil(t, err)
	require.Nil(t, src.Close())

	require.Nil(t, e.AddFile(context.Background(), src.Name()))
	copied, err := ioutil.ReadFile(filepath.Join(e.ScratchDir(), "files", filepath.Base(src.Name())))
	require.Nil(t, err)
	require.Equal(t, "distributed", string(copied))
}
