package local

import (
	"os"

	"github.com/go-flint/flint/errors"
)

type resultEntry struct {
	partition int
	payload   []byte
}

// resultIterator walks completed partition results in completion order
type resultIterator struct {
	entries []resultEntry
	next    int
}

// HasNext returns true iff there is another partition result remaining
func (it *resultIterator) HasNext() bool {
	return it.next < len(it.entries)
}

// Next returns the next partition result
func (it *resultIterator) Next() (int, []byte, error) {
	if !it.HasNext() {
		return 0, nil, errors.NoMoreResultsError{}
	}
	entry := it.entries[it.next]
	it.next++
	return entry.partition, entry.payload, nil
}

func removeScratchDir(path string) error {
	return os.RemoveAll(path)
}
