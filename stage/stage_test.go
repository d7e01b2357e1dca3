package stage

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/serializer"
)

// fakeConn records ingestion calls for staging tests
type fakeConn struct {
	ingestedPath     string
	ingestedData     []byte
	ingestedParts    int
	ingestedChecksum uint64
	ingestErr        error
	pathExisted      bool
}

func (f *fakeConn) DefaultParallelism() int { return 2 }
func (f *fakeConn) ScratchDir() string      { return os.TempDir() }

func (f *fakeConn) IngestFile(ctx context.Context, path string, numPartitions int, checksum uint64) (engine.Ref, error) {
	f.ingestedPath = path
	f.ingestedParts = numPartitions
	f.ingestedChecksum = checksum
	if data, err := ioutil.ReadFile(path); err == nil {
		f.pathExisted = true
		f.ingestedData = data
	}
	if f.ingestErr != nil {
		return "", f.ingestErr
	}
	return "fake-ref", nil
}

func (f *fakeConn) IngestBytes(ctx context.Context, data []byte, numPartitions int, checksum uint64) (engine.Ref, error) {
	f.ingestedData = data
	f.ingestedParts = numPartitions
	f.ingestedChecksum = checksum
	if f.ingestErr != nil {
		return "", f.ingestErr
	}
	return "fake-ref", nil
}

func (f *fakeConn) TextFile(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	return "", 0, nil
}

func (f *fakeConn) WholeTextFiles(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	return "", 0, nil
}

func (f *fakeConn) RunJob(ctx context.Context, spec *engine.JobSpec) (engine.ResultIterator, error) {
	return nil, nil
}

func (f *fakeConn) Broadcast(ctx context.Context, id string, data []byte) error { return nil }
func (f *fakeConn) AddFile(ctx context.Context, paths ...string) error          { return nil }
func (f *fakeConn) Close() error                                                { return nil }

func createStageTestDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "flint-stage-test")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestFileStrategyStagesAndCleansUp(t *testing.T) {
	dir := createStageTestDir(t)
	conn := &fakeConn{}
	ser := serializer.NewPlainSerializer(2)
	values := []interface{}{1, 2, 3, 4, 5}

	ref, err := (&FileStrategy{TempDir: dir}).Stage(context.Background(), conn, ser, values, 2)
	require.Nil(t, err)
	require.Equal(t, engine.Ref("fake-ref"), ref)
	require.Equal(t, 2, conn.ingestedParts)
	// the file existed while the engine read it
	require.True(t, conn.pathExisted)
	require.Equal(t, xxhash.Sum64(conn.ingestedData), conn.ingestedChecksum)
	// and is deleted once ingestion is acknowledged
	entries, err := ioutil.ReadDir(dir)
	require.Nil(t, err)
	require.Len(t, entries, 0)
}

func TestFileStrategyUniqueNames(t *testing.T) {
	dir := createStageTestDir(t)
	strategy := &FileStrategy{TempDir: dir}
	ser := serializer.NewPlainSerializer(2)
	first := &fakeConn{}
	second := &fakeConn{}
	_, err := strategy.Stage(context.Background(), first, ser, []interface{}{1}, 1)
	require.Nil(t, err)
	_, err = strategy.Stage(context.Background(), second, ser, []interface{}{2}, 1)
	require.Nil(t, err)
	require.NotEqual(t, first.ingestedPath, second.ingestedPath)
}

func TestFileStrategyCleansUpOnEncodeError(t *testing.T) {
	dir := createStageTestDir(t)
	conn := &fakeConn{}
	// the UTF-8 serializer rejects non-string values mid-encode
	_, err := (&FileStrategy{TempDir: dir}).Stage(context.Background(), conn, serializer.NewUTF8Serializer(1), []interface{}{"ok", 42}, 1)
	require.NotNil(t, err)
	// no hand-off occurred and the partial file is gone
	require.Equal(t, "", conn.ingestedPath)
	entries, rerr := ioutil.ReadDir(dir)
	require.Nil(t, rerr)
	require.Len(t, entries, 0)
}

func TestFileStrategyCleansUpOnIngestError(t *testing.T) {
	dir := createStageTestDir(t)
	conn := &fakeConn{ingestErr: context.DeadlineExceeded}
	_, err := (&FileStrategy{TempDir: dir}).Stage(context.Background(), conn, serializer.NewPlainSerializer(1), []interface{}{1}, 1)
	require.NotNil(t, err)
	entries, rerr := ioutil.ReadDir(dir)
	require.Nil(t, rerr)
	require.Len(t, entries, 0)
}

func TestMemoryStrategyStages(t *testing.T) {
	conn := &fakeConn{}
	ser := serializer.NewPlainSerializer(2)
	values := []interface{}{1, 2, 3}

	ref, err := (&MemoryStrategy{}).Stage(context.Background(), conn, ser, values, 3)
	require.Nil(t, err)
	require.Equal(t, engine.Ref("fake-ref"), ref)
	require.Equal(t, 3, conn.ingestedParts)
	require.Equal(t, xxhash.Sum64(conn.ingestedData), conn.ingestedChecksum)

	// the staged payload decodes back to the original sequence
	blocks, err := serializer.ReadBlocks(bytes.NewReader(conn.ingestedData))
	require.Nil(t, err)
	require.Len(t, blocks, 3)
	var reassembled []interface{}
	for _, block := range blocks {
		decoded, err := ser.Read(bytes.NewReader(block))
		require.Nil(t, err)
		reassembled = append(reassembled, decoded...)
	}
	require.Equal(t, values, reassembled)
}
