package flint

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-flint/flint/command"
	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
)

// RunJob applies an operation to every element of the requested partitions
// of a Handle's dataset and returns each partition's collected outputs,
// aligned with the validated partition subset. partitions nil means all
// partitions; indices must be non-negative, and indices beyond the Handle's
// partition count are silently dropped. allowLocal is a locality hint
// forwarded to the engine. The call blocks until all results are drained;
// it is all-or-nothing and never retries.
func (c *Context) RunJob(ctx context.Context, h *Handle, op Operation, partitions []int, allowLocal bool) ([][]interface{}, error) {
	return c.runJob(ctx, h.withStage(op.Name()), partitions, allowLocal)
}

// RunJobWithCommand behaves like RunJob with a pre-built Command pipeline
// appended to the Handle's own pipeline
func (c *Context) RunJobWithCommand(ctx context.Context, h *Handle, cmd *Command, partitions []int, allowLocal bool) ([][]interface{}, error) {
	staged := h
	for _, s := range cmd.Chain() {
		staged = staged.withStage(s.Op, s.Args...)
	}
	return c.runJob(ctx, staged, partitions, allowLocal)
}

// Collect returns every element of a Handle's dataset in partition order
func (c *Context) Collect(ctx context.Context, h *Handle) ([]interface{}, error) {
	results, err := c.runJob(ctx, h.withStage(command.Identity), nil, false)
	if err != nil {
		return nil, err
	}
	var values []interface{}
	for _, part := range results {
		values = append(values, part...)
	}
	return values, nil
}

func (c *Context) runJob(ctx context.Context, h *Handle, partitions []int, allowLocal bool) ([][]interface{}, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	subset, err := validatePartitions(partitions, h.numPartitions)
	if err != nil {
		return nil, err
	}
	spec := &engine.JobSpec{
		Ref:        h.ref,
		Command:    h.pipeline,
		Serializer: h.ser.Describe(),
		Partitions: subset,
		AllowLocal: allowLocal,
		Properties: LocalProperties(ctx),
		CallSite:   c.callSite,
	}
	c.log.Debugw("dispatching job", "ref", h.ref, "partitions", len(subset))
	iter, err := c.conn.RunJob(ctx, spec)
	if err != nil {
		return nil, err
	}
	return c.drainResults(iter, h.ser, subset)
}

// validatePartitions normalizes a requested partition subset: nil selects
// every partition, negative indices are rejected, and indices beyond the
// current partition count are dropped to tolerate datasets whose count
// shrank after the caller computed indices
func validatePartitions(partitions []int, numPartitions int) ([]int, error) {
	if partitions == nil {
		all := make([]int, numPartitions)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	subset := make([]int, 0, len(partitions))
	for _, p := range partitions {
		if p < 0 {
			return nil, errors.InvalidPartitionsError{Reason: fmt.Sprintf("index %d is negative", p)}
		}
		if p >= numPartitions {
			continue
		}
		subset = append(subset, p)
	}
	return subset, nil
}

// drainResults consumes the engine's result iterator fully, decoding each
// partition's payload with the Handle's serializer and slotting it by the
// partition's position in the requested subset
func (c *Context) drainResults(iter engine.ResultIterator, ser Serializer, subset []int) ([][]interface{}, error) {
	slots := make(map[int]int, len(subset))
	for i, p := range subset {
		slots[p] = i
	}
	results := make([][]interface{}, len(subset))
	seen := 0
	for iter.HasNext() {
		partition, payload, err := iter.Next()
		if err != nil {
			return nil, err
		}
		slot, ok := slots[partition]
		if !ok {
			return nil, errors.EngineError{Op: "RunJob", Cause: fmt.Errorf("result for unrequested partition %d", partition)}
		}
		values, err := ser.Read(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		results[slot] = values
		seen++
	}
	if seen != len(subset) {
		return nil, errors.EngineError{Op: "RunJob", Cause: fmt.Errorf("engine returned %d of %d requested partitions", seen, len(subset))}
	}
	return results, nil
}
