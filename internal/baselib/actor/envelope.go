package actor

import "reflect"

// envelope is the type-erased unit of delivery between an Address and the
// Executor that owns the corresponding mailbox. A message packed at the
// Address boundary carries along a resolve closure captured at pack time;
// that closure is the only way to recover the concrete message type, and it
// always downcasts to exactly the type it was built for.
type envelope[A any] struct {
	message Message
	resolve func(ctx *Context[A], actor *A, msg Message)
}

// handlerFunc is the concrete, per-message-type transition function an
// actor registers for message type M.
type handlerFunc[A any, M Message] func(ctx *Context[A], actor *A, msg M)

// HandlerSet is a type-indexed table from message type to the dispatch
// closure an actor registered for it. Go methods cannot introduce their own
// type parameters and a single concrete type cannot declare two methods
// both named Handle with different signatures, so a HandlerSet is the
// substitute for the original crate's per-message-type trait impl: it is
// built once (normally inside the actor's constructor) via Register, and
// Address.Send consults it to produce the envelope's resolve closure.
type HandlerSet[A any] struct {
	fns map[reflect.Type]func(ctx *Context[A], actor *A, msg Message)
}

// NewHandlerSet creates an empty HandlerSet. Use Register to populate it.
func NewHandlerSet[A any]() *HandlerSet[A] {
	return &HandlerSet[A]{
		fns: make(map[reflect.Type]func(ctx *Context[A], actor *A, msg Message)),
	}
}

// Register associates fn as the transition function actor type A uses to
// process messages of type M. This is a package-level generic function,
// not a method on HandlerSet, because Go methods cannot carry their own
// type parameters (the same reason the teacher's RegisterWithReceptionist
// and RegisterWithSystem are package-level functions rather than methods).
func Register[A any, M Message](set *HandlerSet[A], fn handlerFunc[A, M]) {
	var zero M
	msgType := reflect.TypeOf(zero)

	set.fns[msgType] = func(ctx *Context[A], actor *A, msg Message) {
		fn(ctx, actor, msg.(M))
	}
}

// lookup resolves the dispatch closure registered for msg's concrete type.
// The bool result is false when no handler was registered for that type.
func (s *HandlerSet[A]) lookup(msg Message) (func(ctx *Context[A], actor *A, msg Message), bool) {
	fn, ok := s.fns[reflect.TypeOf(msg)]
	return fn, ok
}

// pack produces an envelope for msg using the dispatch closure registered
// in set. Packing requires proof that A handles M; here that proof is the
// dynamic HandlerSet lookup rather than a compile-time trait bound, since
// Go generics cannot express "for all M, A implements Handler[M]" on a
// single method set. A message type with no registered handler is a
// programmer error, not a recoverable runtime condition, and is reported
// via the ok result so the caller can decide how to surface it (Address.Send
// panics, see address.go).
func pack[A any](set *HandlerSet[A], msg Message) (envelope[A], bool) {
	fn, ok := set.lookup(msg)
	if !ok {
		return envelope[A]{}, false
	}

	return envelope[A]{message: msg, resolve: fn}, true
}
