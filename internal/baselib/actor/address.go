package actor

import (
	"context"
	"sync/atomic"
)

// addressSeq is the process-wide source of actor identities. Every
// Executor mints exactly one id from this counter, at construction time;
// every Address and WeakAddress cloned, downgraded, or upgraded from that
// point on shares the same id. Relaxed/best-effort ordering is all that is
// required since the counter only needs to hand out distinct values, never
// to synchronize anything else — the same guarantee the original crate
// gets from an AtomicU64 with Ordering::Relaxed.
var addressSeq atomic.Uint64

// nextAddressID mints a new, process-unique identity.
func nextAddressID() uint64 {
	return addressSeq.Add(1)
}

// Address is a strong send handle to an actor of type A. "Strong" mirrors
// the original crate's ownership model, where the mailbox stays open as
// long as at least one Address clone is outstanding: dropping the last
// clone closes the channel, which in turn drives the Executor's run loop
// into SendersClosed.
//
// Go has no destructors, so unlike the original crate's Drop-based
// bookkeeping, the last-sender-gone transition here is tracked by an
// explicit reference count on the underlying mailbox, adjusted by Clone
// and Close rather than inferred from scope exit. An Address value
// produced by a plain Go struct copy (`:=`, passing by value to another
// goroutine, …) does NOT register as a new outstanding sender by itself —
// call Clone to hand out a reference another owner is expected to Close,
// and call Close once this value is no longer used to send. Forgetting to
// Close a clone leaks a sender the same way forgetting to drop a Rust
// clone would.
type Address[A any] struct {
	id       uint64
	mailbox  *mailbox[A]
	handlers *HandlerSet[A]
}

// ID returns this address's identity. Identity is assigned once, at the
// Executor's construction, and is preserved across Clone, Downgrade, and
// Upgrade.
func (a Address[A]) ID() uint64 {
	return a.id
}

// Send packs msg against the actor's HandlerSet and delivers it, blocking
// until accepted or ctx ends. It returns false if the send did not
// complete (mailbox closed, or ctx cancelled first); per spec.md's silent
// send failure rule, this result is never escalated into an error visible
// to the receiving actor's own message-handling code — callers that care
// must check the returned bool themselves.
//
// Send panics if msg's concrete type has no handler registered on this
// actor's HandlerSet: an unhandled message type is a programmer error
// (a missing Register call), not a runtime condition, just like the
// resource pool's downcast-mismatch class of bug.
func (a Address[A]) Send(ctx context.Context, msg Message) bool {
	env, ok := pack(a.handlers, msg)
	if !ok {
		panic(ErrUnhandledMessage)
	}

	return a.mailbox.send(ctx, env)
}

// TrySend is the non-blocking counterpart to Send.
func (a Address[A]) TrySend(msg Message) bool {
	env, ok := pack(a.handlers, msg)
	if !ok {
		panic(ErrUnhandledMessage)
	}

	return a.mailbox.trySend(env)
}

// Clone returns a new strong Address sharing this one's identity and
// mailbox, and registers it as an additional outstanding sender. The
// returned value must eventually be Closed.
func (a Address[A]) Clone() Address[A] {
	a.mailbox.addSender()
	return a
}

// Close releases this Address's claim on the mailbox's sender count. Once
// every Address clone (including the one originally returned by
// NewExecutor) has been Closed, the mailbox closes and the owning
// Executor's run loop transitions to SendersClosed.
func (a Address[A]) Close() {
	a.mailbox.releaseSender()
}

// Downgrade produces a WeakAddress sharing this Address's identity but
// which never keeps the mailbox alive on its own.
func (a Address[A]) Downgrade() WeakAddress[A] {
	return WeakAddress[A]{id: a.id, mailbox: a.mailbox, handlers: a.handlers}
}

// WeakAddress is the non-owning counterpart to Address: cloning it is
// cheap (a plain struct copy is all that's needed — WeakAddress never
// participates in the sender count), but for as long as the mailbox it
// points to remains open it can still be upgraded back into a full
// Address, sharing the same identity it was downgraded from.
type WeakAddress[A any] struct {
	id       uint64
	mailbox  *mailbox[A]
	handlers *HandlerSet[A]
}

// ID returns this WeakAddress's identity, identical to the Address it was
// downgraded from (or, transitively, to the original Address an Upgrade
// chain started from).
func (w WeakAddress[A]) ID() uint64 {
	return w.id
}

// Upgrade attempts to produce a strong Address again, registering it as a
// new outstanding sender. It fails (ok=false) once every other sender has
// gone and the mailbox has closed, meaning the actor has fully shut down.
//
// Crucially — unlike the original crate, where upgrade mints a fresh id
// via Address::new, a documented REDESIGN fix here — the returned Address
// preserves this WeakAddress's identity rather than minting a new one, per
// spec.md's invariant that identity survives every downgrade/upgrade round
// trip.
func (w WeakAddress[A]) Upgrade() (Address[A], bool) {
	if !w.mailbox.addSender() {
		return Address[A]{}, false
	}

	return Address[A]{id: w.id, mailbox: w.mailbox, handlers: w.handlers}, true
}
