package command

import (
	"fmt"
	"sync"

	"github.com/go-flint/flint/errors"
)

// Identity names the built-in operation which passes records through
// unchanged. RunJob uses it to collect a partition as-is.
const Identity = "identity"

// An OpFunc transforms one record into zero or more records. Args are the
// captured arguments of the pipeline stage which named this operation.
type OpFunc func(v interface{}, args ...interface{}) ([]interface{}, error)

// An Operation is a handle to a registered OpFunc, usable to build Commands
type Operation struct {
	name string
}

// Name returns the registered name of this Operation
func (o Operation) Name() string {
	return o.name
}

// Command produces a single-stage Command applying this Operation with the
// given captured arguments
func (o Operation) Command(args ...interface{}) *Command {
	return New(o.name, args...)
}

var (
	opsLock sync.RWMutex
	ops     = map[string]OpFunc{}
)

// RegisterOp adds an operation to the registry under a unique name. Both the
// driver and the engine must register the same operations, typically from
// package init, so a Command relayed by name resolves identically on either
// side. Duplicate registration panics.
func RegisterOp(name string, fn OpFunc) Operation {
	opsLock.Lock()
	defer opsLock.Unlock()
	if _, ok := ops[name]; ok {
		panic(fmt.Sprintf("operation %q is already registered", name))
	}
	ops[name] = fn
	return Operation{name: name}
}

// Lookup resolves a registered operation by name
func Lookup(name string) (OpFunc, error) {
	opsLock.RLock()
	defer opsLock.RUnlock()
	fn, ok := ops[name]
	if !ok {
		return nil, errors.UnknownOperationError{Name: name}
	}
	return fn, nil
}

// IdentityOp is the Operation handle for the built-in identity operation
var IdentityOp = RegisterOp(Identity, func(v interface{}, args ...interface{}) ([]interface{}, error) {
	return []interface{}{v}, nil
})
