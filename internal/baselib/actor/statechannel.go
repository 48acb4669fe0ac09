package actor

// execState enumerates the states the Executor's run loop can be driven
// into from outside (Continue is the implicit rest state and is never sent
// explicitly; it is only ever produced by resetState).
type execState int

const (
	// stateContinue means the executor should keep processing mail. It
	// is the zero value and the state reset returns to.
	stateContinue execState = iota

	// stateShutdown means the executor should stop its run loop cleanly
	// and return a nil error.
	stateShutdown

	// stateSendersClosed means every Address for this actor has been
	// dropped; the executor should stop and report ErrAddressClosed.
	stateSendersClosed
)

// stateChannel is the unbounded, multi-producer/single-consumer control
// channel the original crate builds on async_channel::unbounded and
// force_send: Shutdown must always be deliverable, from any goroutine, at
// any time, and must never block the caller. A plain buffered Go channel
// cannot promise that under adversarial repeated sends, so send here is
// non-blocking first and falls back to a detached goroutine that completes
// the blocking send in the background on the buffer-full path, which in
// practice is never taken (Shutdown is normally sent at most once or twice
// per actor lifetime).
type stateChannel struct {
	ch     chan execState
	closed chan struct{}
}

// stateChannelCapacity is generous relative to the number of control
// signals an executor expects to see in its lifetime (normally a single
// Shutdown; SendersClosed is set by the executor directly and never travels
// over this channel).
const stateChannelCapacity = 8

func newStateChannel() *stateChannel {
	return &stateChannel{
		ch:     make(chan execState, stateChannelCapacity),
		closed: make(chan struct{}),
	}
}

// send delivers v without blocking the caller. It returns false if the
// channel has already been closed (the executor has torn down).
func (s *stateChannel) send(v execState) bool {
	select {
	case <-s.closed:
		return false
	default:
	}

	select {
	case s.ch <- v:
		return true
	default:
		// Buffer momentarily full: finish the send asynchronously so the
		// caller is never blocked, preserving force-send semantics.
		go func() {
			select {
			case s.ch <- v:
			case <-s.closed:
			}
		}()
		return true
	}
}

// recv exposes the channel's read end for the executor's biased poll
// against the mailbox. The same channel is reused across iterations; it is
// never "consumed" the way a one-shot future would be.
func (s *stateChannel) recv() <-chan execState {
	return s.ch
}

// close marks the channel as torn down, unblocking any goroutine still
// trying to complete a deferred send from send's slow path.
func (s *stateChannel) close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}

// reopen replaces the closed signal with a fresh one, letting an Executor
// that has already run to completion be run again.
func (s *stateChannel) reopen() {
	s.closed = make(chan struct{})
}
