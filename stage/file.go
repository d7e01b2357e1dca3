package stage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/serializer"
)

// FileStrategy stages a collection through a uniquely named temp file which
// the engine opens by path. Ownership of the file transfers to the engine for
// the duration of the ingest call and back to the driver for deletion: the
// file is removed on every exit path, but never before IngestFile returns.
type FileStrategy struct {
	TempDir string
}

// Stage encodes values into a temp file, hands the path to the engine's
// file-ingestion primitive, then deletes the file
func (s *FileStrategy) Stage(ctx context.Context, conn engine.Conn, ser serializer.Serializer, values []interface{}, numPartitions int) (ref engine.Ref, err error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.TempDir, fmt.Sprintf("stage-%s", id))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if rerr := os.Remove(path); rerr != nil {
			err = multierror.Append(err, rerr).ErrorOrNil()
		}
	}()
	checksum := xxhash.New()
	if err = serializer.WriteBlocks(io.MultiWriter(f, checksum), ser, values, numPartitions); err != nil {
		f.Close()
		return "", err
	}
	// close without deleting, so the engine can open the path
	if err = f.Close(); err != nil {
		return "", err
	}
	return conn.IngestFile(ctx, path, numPartitions, checksum.Sum64())
}
