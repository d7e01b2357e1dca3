package errors

import (
	"fmt"
)

// ConfigError occurs when Context configuration fails validation. No Context
// is produced when this error is returned.
type ConfigError struct {
	Field   string
	Message string
}

// Error returns a textual representation of this ConfigError
func (e ConfigError) Error() string {
	return fmt.Sprintf("Invalid configuration for %s: %s", e.Field, e.Message)
}

// UnknownSerializerError occurs when a serializer name cannot be resolved
type UnknownSerializerError struct{ Name string }

// Error returns a textual representation of this UnknownSerializerError
func (e UnknownSerializerError) Error() string {
	return fmt.Sprintf("Unknown serializer %q", e.Name)
}

// SerializerDescriptorError occurs when a serializer descriptor cannot be parsed
type SerializerDescriptorError struct{ Descriptor string }

// Error returns a textual representation of this SerializerDescriptorError
func (e SerializerDescriptorError) Error() string {
	return fmt.Sprintf("Malformed serializer descriptor %q", e.Descriptor)
}

// InvalidPartitionsError occurs when a job is submitted with a malformed
// partition subset
type InvalidPartitionsError struct{ Reason string }

// Error returns a textual representation of this InvalidPartitionsError
func (e InvalidPartitionsError) Error() string {
	return fmt.Sprintf("Invalid partition subset: %s", e.Reason)
}

// InvalidCollectionError occurs when a value cannot be materialized into a
// sequence for staging
type InvalidCollectionError struct{ Type string }

// Error returns a textual representation of this InvalidCollectionError
func (e InvalidCollectionError) Error() string {
	return fmt.Sprintf("Cannot materialize %s into a sequence", e.Type)
}

// UnknownOperationError occurs when a command names an operation which was
// never registered
type UnknownOperationError struct{ Name string }

// Error returns a textual representation of this UnknownOperationError
func (e UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation %q", e.Name)
}

// ContextStoppedError occurs when an operation is attempted on a stopped Context
type ContextStoppedError struct{}

// Error returns a textual representation of this ContextStoppedError
func (e ContextStoppedError) Error() string {
	return "Context has been stopped"
}

// ChecksumMismatchError occurs when staged payload bytes do not match the
// checksum computed by the driver
type ChecksumMismatchError struct {
	Expected uint64
	Actual   uint64
}

// Error returns a textual representation of this ChecksumMismatchError
func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf("Staged payload checksum mismatch: expected %x but read %x", e.Expected, e.Actual)
}

// NoMoreResultsError occurs when there are no more partition results in a
// ResultIterator
type NoMoreResultsError struct{}

// Error returns a textual representation of this NoMoreResultsError
func (e NoMoreResultsError) Error() string {
	return "No more partition results"
}

// UnknownDatasetError occurs when a job references a dataset the engine does
// not hold
type UnknownDatasetError struct{ Ref string }

// Error returns a textual representation of this UnknownDatasetError
func (e UnknownDatasetError) Error() string {
	return fmt.Sprintf("Unknown dataset reference %q", e.Ref)
}

// EngineError wraps any failure surfaced by the engine during ingestion or
// job execution. It is propagated verbatim and never retried.
type EngineError struct {
	Op    string
	Cause error
}

// Error returns a textual representation of this EngineError
func (e EngineError) Error() string {
	return fmt.Sprintf("Engine %s failed: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying engine failure
func (e EngineError) Unwrap() error {
	return e.Cause
}
