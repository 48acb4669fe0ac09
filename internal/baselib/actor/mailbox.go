package actor

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"
)

// mailbox is a bounded, channel-backed FIFO queue of envelope[A], shared
// between every clone of an Address[A] and the single Executor[A] that
// drains it. It is adapted from the teacher's ChannelMailbox[M,R]: the
// same read-lock-held-during-send discipline prevents a send racing with
// Close from panicking on a closed channel, and receive/drain are exposed
// as iter.Seq (the executor itself selects on recvChan instead). Unlike
// the teacher's mailbox, which is parameterized per message/response pair,
// this mailbox holds heterogeneous envelope[A] values — the message type
// is erased per spec.md's Envelope<A> design, not per Mailbox[M,R].
type mailbox[A any] struct {
	ch chan envelope[A]

	closed atomic.Bool

	// mu guards against a send racing with Close; Close takes the write
	// lock so no send can be mid-flight when the channel is closed.
	mu sync.RWMutex

	closeOnce sync.Once

	// senders tracks outstanding strong Address clones. It starts at 1
	// for the Address NewExecutor hands back; it reaches 0 exactly when
	// every clone has been explicitly Closed, at which point the mailbox
	// closes itself. See Address's doc comment for why this is explicit
	// rather than drop-inferred.
	senders atomic.Int64
}

// defaultMailboxCapacity is used when a non-positive capacity is supplied,
// matching spec.md's stated default bounded capacity.
const defaultMailboxCapacity = 100

// newMailbox creates a mailbox with the given capacity. A non-positive
// capacity falls back to defaultMailboxCapacity.
func newMailbox[A any](capacity int) *mailbox[A] {
	if capacity <= 0 {
		capacity = defaultMailboxCapacity
	}

	m := &mailbox[A]{ch: make(chan envelope[A], capacity)}
	m.senders.Store(1)

	return m
}

// addSender registers one more outstanding strong sender. It returns false
// if the mailbox has already lost all of its senders (and therefore
// closed), in which case no new strong Address can be minted.
func (m *mailbox[A]) addSender() bool {
	for {
		n := m.senders.Load()
		if n <= 0 {
			return false
		}

		if m.senders.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// releaseSender removes one outstanding strong sender, closing the
// mailbox once the count reaches zero.
func (m *mailbox[A]) releaseSender() {
	if m.senders.Add(-1) == 0 {
		m.close()
	}
}

// send attempts to deliver env, blocking until it is accepted or ctx is
// cancelled. It returns false if the mailbox is closed or ctx ends first.
func (m *mailbox[A]) send(ctx context.Context, env envelope[A]) bool {
	if ctx.Err() != nil {
		return false
	}

	// Held for the whole send: Close cannot acquire the write lock, and
	// therefore cannot close m.ch, while any RLock is outstanding.
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed.Load() {
		return false
	}

	select {
	case m.ch <- env:
		return true
	case <-ctx.Done():
		return false
	}
}

// trySend attempts to deliver env without blocking.
func (m *mailbox[A]) trySend(env envelope[A]) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed.Load() {
		return false
	}

	select {
	case m.ch <- env:
		return true
	default:
		return false
	}
}

// recvChan exposes the mailbox's raw channel read end for the executor's
// biased poll against the state channel. Unlike receive, it performs no
// context handling of its own; the executor folds that into its own
// select.
func (m *mailbox[A]) recvChan() <-chan envelope[A] {
	return m.ch
}

// receive returns an iterator that yields envelopes as they arrive. It
// stops when ctx is cancelled or the mailbox is closed and empty.
func (m *mailbox[A]) receive(ctx context.Context) iter.Seq[envelope[A]] {
	return func(yield func(envelope[A]) bool) {
		for {
			if ctx.Err() != nil {
				return
			}

			select {
			case env, ok := <-m.ch:
				if !ok {
					return
				}

				if !yield(env) {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}
}

// close closes the mailbox. Safe to call more than once; only the first
// call has any effect.
func (m *mailbox[A]) close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.closed.Store(true)
		close(m.ch)
	})
}

// isClosed reports whether close has been called.
func (m *mailbox[A]) isClosed() bool {
	return m.closed.Load()
}

// drain yields any envelopes left in the mailbox after close. It is a
// no-op if the mailbox has not been closed yet.
func (m *mailbox[A]) drain() iter.Seq[envelope[A]] {
	return func(yield func(envelope[A]) bool) {
		if !m.isClosed() {
			return
		}

		for {
			select {
			case env, ok := <-m.ch:
				if !ok {
					return
				}

				if !yield(env) {
					return
				}

			default:
				return
			}
		}
	}
}
