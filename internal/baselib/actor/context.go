package actor

// Context is the handle an actor's own message handlers and lifecycle
// hooks (starting/stopping) receive: the write end of its Executor's state
// channel, plus a WeakAddress the actor can hand out to address itself
// (e.g. to schedule a message to itself, or to give a child its parent's
// address). It is a small value type and copies cheaply; there is no
// separate Clone method, matching ordinary Go value semantics rather than
// the original crate's explicit #[derive(Clone)].
type Context[A any] struct {
	state   *stateChannel
	address WeakAddress[A]
}

// Shutdown requests that the owning Executor stop its run loop after the
// current message, if any, finishes processing. Like ShutdownHandle.
// Shutdown, this never blocks the caller.
func (c *Context[A]) Shutdown() {
	c.state.send(stateShutdown)
}

// Address returns a WeakAddress referring to this actor itself.
func (c *Context[A]) Address() WeakAddress[A] {
	return c.address
}

// ShutdownHandle is a thinner sibling of Context: it carries only the
// write end of the state channel, without the weak address, so that a
// caller who should be able to stop an actor but has no business knowing
// its address can be handed one safely.
type ShutdownHandle struct {
	state *stateChannel
}

// Shutdown requests that the owning Executor stop. Unlike Context.Shutdown,
// this reports failure: once the executor has already torn down (its state
// channel closed), Shutdown returns ErrAlreadyShutdown instead of silently
// doing nothing.
func (h ShutdownHandle) Shutdown() error {
	if !h.state.send(stateShutdown) {
		return ErrAlreadyShutdown
	}

	return nil
}
