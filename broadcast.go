package flint

import (
	"bytes"
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/go-flint/flint/serializer"
)

// A BroadcastRef identifies a value replicated to the engine. Replication
// internals belong to the engine.
type BroadcastRef struct {
	ID string
}

// Broadcast replicates a value to the engine under the given id, or a fresh
// unique id when empty. The value is encoded with the plain serializer.
func (c *Context) Broadcast(ctx context.Context, value interface{}, id string) (*BroadcastRef, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	if len(id) == 0 {
		generated, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		id = generated.String()
	}
	var payload bytes.Buffer
	ser := serializer.NewPlainSerializer(1)
	if err := ser.Write(&payload, []interface{}{value}); err != nil {
		return nil, err
	}
	if err := c.conn.Broadcast(ctx, id, payload.Bytes()); err != nil {
		return nil, err
	}
	c.log.Debugw("broadcast value", "id", id, "bytes", payload.Len())
	return &BroadcastRef{ID: id}, nil
}
