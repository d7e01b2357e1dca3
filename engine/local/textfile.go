package local

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	"github.com/go-flint/flint/serializer"
)

// TextFile reads a file (or every file in a directory) line by line and
// registers the lines as a UTF-8 encoded dataset of numPartitions partitions
func (e *Engine) TextFile(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	if numPartitions < 1 {
		numPartitions = e.opts.DefaultParallelism
	}
	paths, err := sourceFiles(path)
	if err != nil {
		return "", 0, errors.EngineError{Op: "TextFile", Cause: err}
	}
	var lines []interface{}
	for _, p := range paths {
		if err := appendLines(p, &lines); err != nil {
			return "", 0, errors.EngineError{Op: "TextFile", Cause: err}
		}
	}
	parts, err := blocksOf(serializer.NewUTF8Serializer(1), lines, numPartitions)
	if err != nil {
		return "", 0, errors.EngineError{Op: "TextFile", Cause: err}
	}
	return e.registerDataset(parts), numPartitions, nil
}

// WholeTextFiles reads every file under a path in full and registers a
// paired dataset of (source path, content) records
func (e *Engine) WholeTextFiles(ctx context.Context, path string, numPartitions int) (engine.Ref, int, error) {
	if numPartitions < 1 {
		numPartitions = e.opts.DefaultParallelism
	}
	paths, err := sourceFiles(path)
	if err != nil {
		return "", 0, errors.EngineError{Op: "WholeTextFiles", Cause: err}
	}
	var pairs []interface{}
	for _, p := range paths {
		content, err := ioutil.ReadFile(p)
		if err != nil {
			return "", 0, errors.EngineError{Op: "WholeTextFiles", Cause: err}
		}
		pairs = append(pairs, serializer.Pair{Key: p, Value: string(content)})
	}
	ser := serializer.NewPairSerializer(serializer.NewUTF8Serializer(1), serializer.NewUTF8Serializer(1), 1)
	parts, err := blocksOf(ser, pairs, numPartitions)
	if err != nil {
		return "", 0, errors.EngineError{Op: "WholeTextFiles", Cause: err}
	}
	return e.registerDataset(parts), numPartitions, nil
}

// AddFile copies local files into the engine's scratch file store
func (e *Engine) AddFile(ctx context.Context, paths ...string) error {
	filesDir := filepath.Join(e.scratchDir, "files")
	if err := os.MkdirAll(filesDir, 0755); err != nil {
		return errors.EngineError{Op: "AddFile", Cause: err}
	}
	for _, path := range paths {
		if err := copyFile(path, filepath.Join(filesDir, filepath.Base(path))); err != nil {
			return errors.EngineError{Op: "AddFile", Cause: err}
		}
	}
	return nil
}

// sourceFiles resolves a path into an ordered list of regular files
func sourceFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.Mode().IsRegular() {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func appendLines(path string, lines *[]interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		*lines = append(*lines, scanner.Text())
	}
	return scanner.Err()
}

// blocksOf encodes values into numPartitions partition block payloads
func blocksOf(ser serializer.Serializer, values []interface{}, numPartitions int) ([][]byte, error) {
	var buf bytes.Buffer
	if err := serializer.WriteBlocks(&buf, ser, values, numPartitions); err != nil {
		return nil, err
	}
	return serializer.ReadBlocks(&buf)
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
