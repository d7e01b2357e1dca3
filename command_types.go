package flint

import (
	"github.com/go-flint/flint/command"
)

// A Command is a serializable, composable description of per-element
// transformations, applied by the engine per partition, per record, in chain
// order
type Command = command.Command

// An Operation is a handle to a transformation registered in the closed
// operation registry shared by driver and engine
type Operation = command.Operation

// An OpFunc transforms one record into zero or more records
type OpFunc = command.OpFunc

// Identity is the built-in pass-through Operation
var Identity = command.IdentityOp

// RegisterOp adds an operation to the registry under a unique name,
// typically from package init so driver and engine agree on the registry's
// contents. Duplicate registration panics.
func RegisterOp(name string, fn OpFunc) Operation {
	return command.RegisterOp(name, fn)
}
