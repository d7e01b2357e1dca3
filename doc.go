// Package flint is a driver-side binding to a remote partitioned-execution
// engine. It stages local collections into serialized, partitioned payloads
// the engine can ingest, wraps transformations into serializable command
// pipelines, submits jobs against chosen partition subsets, and streams the
// engine's per-partition results back into local memory. The engine itself
// is an external collaborator reached through the engine package's Conn
// interface; this root package defines the driver-facing concepts.
package flint
