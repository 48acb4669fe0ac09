package supervisor

import (
	"github.com/lattice-run/actorkit/internal/baselib/actor"
)

// InsertResource requests that value be stored in the Overseer's pool.
// Unlike the synchronous InsertResourceMethod function, the message handler is
// a no-op when a value of type R is already present: the message API
// favors "insert if absent" so that concurrent senders racing to
// initialize the same resource don't stomp on one another's value. Use
// UpdateResource to replace an existing value, or UpdateOrInsertResource
// to get either behavior depending on what's already there.
type InsertResource[R any] struct {
	actor.BaseMessage
	Value R
}

// UpdateResource requests that the value stored for type R be replaced
// with Value. It is a no-op if no value of type R is currently present.
type UpdateResource[R any] struct {
	actor.BaseMessage
	Value R
}

// RemoveResource requests that the value stored for type R be deleted.
// It carries no payload; R is only used to select which resource to
// remove.
type RemoveResource[R any] struct {
	actor.BaseMessage
}

// UpdateOrInsertResource requests that Value be stored for type R
// regardless of whether one is already present, using UpdateResource
// semantics when it is and InsertResource semantics when it is not. This
// message has no counterpart in the reference implementation; it exists
// so callers who don't care about the insert/update distinction don't
// have to probe ContainsResource themselves before choosing a message.
type UpdateOrInsertResource[R any] struct {
	actor.BaseMessage
	Value R
}

// RegisterResourceHandlers wires the four resource-mutation messages for
// type R into set, the HandlerSet backing an Executor[Overseer[H]]. Call
// this once per resource type an Overseer instance needs to accept over
// its mailbox.
func RegisterResourceHandlers[H Handle, R any](set *actor.HandlerSet[Overseer[H]]) {
	actor.Register(set, func(ctx *actor.Context[Overseer[H]], o *Overseer[H], msg InsertResource[R]) {
		if Contains[R](o.pool) {
			return
		}
		InsertResourceMethod[R, H](o, msg.Value)
	})

	actor.Register(set, func(ctx *actor.Context[Overseer[H]], o *Overseer[H], msg UpdateResource[R]) {
		UpdateResourceMethod[R, H](o, msg.Value)
	})

	actor.Register(set, func(ctx *actor.Context[Overseer[H]], o *Overseer[H], msg RemoveResource[R]) {
		RemoveResourceMethod[R, H](o)
	})

	actor.Register(set, func(ctx *actor.Context[Overseer[H]], o *Overseer[H], msg UpdateOrInsertResource[R]) {
		if Contains[R](o.pool) {
			UpdateResourceMethod[R, H](o, msg.Value)
			return
		}
		InsertResourceMethod[R, H](o, msg.Value)
	})
}
