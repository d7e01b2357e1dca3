// Package command describes the per-partition transformation pipelines
// relayed to the engine alongside submitted jobs. A Command is an immutable
// linked chain of named operation stages; the operations themselves live in a
// closed registry shared by driver and engine, so a pipeline serializes as
// pure data with no captured closures.
package command

import (
	"bytes"
	"encoding/gob"
	"fmt"

	iutil "github.com/go-flint/flint/internal/util"
)

func init() {
	gob.Register([]interface{}{})
}

// A Command is one stage of a transformation pipeline, linked to the stage
// which precedes it. Stages apply per partition, per record, in chain order.
type Command struct {
	Op   string
	Args []interface{}
	Prev *Command
}

// New produces a single-stage Command for a registered operation
func New(op string, args ...interface{}) *Command {
	return &Command{Op: op, Args: args}
}

// Then produces a new Command which applies c's pipeline, then the given
// operation. c is not modified.
func (c *Command) Then(op string, args ...interface{}) *Command {
	return &Command{Op: op, Args: args, Prev: c}
}

// Chain returns the stages of this pipeline in application order
func (c *Command) Chain() []*Command {
	var depth int
	for stage := c; stage != nil; stage = stage.Prev {
		depth++
	}
	stages := make([]*Command, depth)
	for stage := c; stage != nil; stage = stage.Prev {
		depth--
		stages[depth] = stage
	}
	return stages
}

// Apply runs this pipeline over one partition's records, in order, collecting
// the outputs of each stage before applying the next
func (c *Command) Apply(values []interface{}) ([]interface{}, error) {
	for _, stage := range c.Chain() {
		fn, err := Lookup(stage.Op)
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, 0, len(values))
		for _, v := range values {
			produced, err := safeCall(fn, v, stage.Args)
			if err != nil {
				return nil, err
			}
			out = append(out, produced...)
		}
		values = out
	}
	return values, nil
}

// safeCall invokes an operation such that panics in user code are recovered
// and nice error messages are constructed
func safeCall(fn OpFunc, v interface{}, args []interface{}) (produced []interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Operation Panic: %w\nValue: %v\n%s", anErr, v, iutil.GetTrace())
			} else {
				err = fmt.Errorf("Operation Panic: %v\nValue: %v\n%s", r, v, iutil.GetTrace())
			}
		}
	}()
	return fn(v, args...)
}

// Encode serializes a Command pipeline for relay to the engine
func Encode(c *Command) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a Command pipeline relayed by a driver
func Decode(data []byte) (*Command, error) {
	var c Command
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
