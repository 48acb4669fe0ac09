package actor

import "sync"

// Bump is a simple message used across this package's tests: it asks the
// counter actor to add Amount to its running total.
type Bump struct {
	BaseMessage

	Amount int
}

// Stop is a simple message used to verify multiple message types can be
// registered and dispatched against the same actor.
type Stop struct {
	BaseMessage
}

// counter is a minimal test actor: it accumulates Bump.Amount into Total
// and records every value it has seen, guarded by a mutex since tests
// sometimes peek at it from outside the executor goroutine after Run
// returns.
type counter struct {
	mu      sync.Mutex
	Total   int
	Seen    []int
	started bool
	stopped bool
}

func newCounterHandlers() *HandlerSet[counter] {
	set := NewHandlerSet[counter]()

	Register(set, func(ctx *Context[counter], c *counter, msg Bump) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.Total += msg.Amount
		c.Seen = append(c.Seen, msg.Amount)
	})

	Register(set, func(ctx *Context[counter], c *counter, msg Stop) {
		ctx.Shutdown()
	})

	return set
}

func (c *counter) Starting(ctx *Context[counter]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
}

func (c *counter) Stopping(ctx *Context[counter]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
}

func (c *counter) snapshot() (total int, seen []int, started, stopped bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seenCopy := make([]int, len(c.Seen))
	copy(seenCopy, c.Seen)

	return c.Total, seenCopy, c.started, c.stopped
}
