package actor

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Starter is an optional interface an actor can implement to run setup
// logic right before its Executor begins its run loop. Go has no default
// trait methods, so unlike the original crate's Actor::starting (which has
// a no-op default), this is modeled as an optional interface checked via a
// type assertion — the same pattern the teacher uses for its (non-generic,
// single-behavior) Stoppable interface.
type Starter[A any] interface {
	Starting(ctx *Context[A])
}

// Stopper is the symmetric optional interface for teardown logic, run
// after the run loop exits but before Run/RunAgainst returns.
type Stopper[A any] interface {
	Stopping(ctx *Context[A])
}

// ExecutorConfig holds Executor construction options.
type ExecutorConfig struct {
	capacity        int
	stoppingTimeout fn.Option[time.Duration]
}

// ExecutorOption configures an Executor at construction time.
type ExecutorOption func(*ExecutorConfig)

// WithCapacity overrides the mailbox's bounded capacity (default 100).
func WithCapacity(capacity int) ExecutorOption {
	return func(c *ExecutorConfig) {
		c.capacity = capacity
	}
}

// WithStoppingTimeout bounds how long the executor waits for an optional
// Stopper's Stopping hook to return before giving up on it and returning
// control to the caller anyway. Go cannot forcibly cancel a running
// goroutine, so exceeding the timeout is logged rather than enforced: the
// hook keeps running in the background, but Run/RunAgainst no longer waits
// on it.
func WithStoppingTimeout(d time.Duration) ExecutorOption {
	return func(c *ExecutorConfig) {
		c.stoppingTimeout = fn.Some(d)
	}
}

// Executor owns an actor of type A exclusively and drives its run loop: on
// every iteration it races its state channel against its mailbox, biased
// towards the state channel, processing exactly one envelope or state
// transition per iteration.
type Executor[A any] struct {
	actor    *A
	handlers *HandlerSet[A]
	mbox     *mailbox[A]
	states   *stateChannel
	state    execState
	actorCtx Context[A]
	cfg      ExecutorConfig
}

// NewExecutor constructs an Executor for actor, along with the strong
// Address used to send it messages. handlers must be fully populated
// before the executor starts; registering handlers after Run has been
// called is not safe for concurrent use.
func NewExecutor[A any](
	actor *A, handlers *HandlerSet[A], opts ...ExecutorOption,
) (*Executor[A], Address[A]) {

	cfg := ExecutorConfig{capacity: defaultMailboxCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := nextAddressID()
	mbox := newMailbox[A](cfg.capacity)
	states := newStateChannel()

	addr := Address[A]{id: id, mailbox: mbox, handlers: handlers}

	e := &Executor[A]{
		actor:    actor,
		handlers: handlers,
		mbox:     mbox,
		states:   states,
		state:    stateContinue,
		cfg:      cfg,
	}
	e.actorCtx = Context[A]{state: states, address: addr.Downgrade()}

	return e, addr
}

// ShutdownHandle returns a handle that can request this executor stop,
// without exposing the actor's address.
func (e *Executor[A]) ShutdownHandle() ShutdownHandle {
	return ShutdownHandle{state: e.states}
}

// Actor returns the actor instance this executor owns. Go has no borrow
// checker, so unlike the original crate's separate actor_ref/actor_mut
// accessors, a single pointer accessor serves both read and write access;
// callers are expected to use it only between Run/RunAgainst calls, since
// the executor exclusively owns the actor while its loop is running.
func (e *Executor[A]) Actor() *A {
	return e.actor
}

// resetState drains any buffered but unconsumed state-channel entries and
// resets the run state to Continue, allowing the same Executor to be run
// again after a previous Run/RunAgainst returned.
func (e *Executor[A]) resetState() {
	e.states.reopen()

	for {
		select {
		case <-e.states.recv():
		default:
			e.state = stateContinue
			return
		}
	}
}

// Run drives the executor's loop to completion: it resets state, invokes
// an optional Starter hook, processes mail until a Shutdown is requested or
// every Address has been dropped, then invokes an optional Stopper hook.
// It returns nil after a clean Shutdown, or ErrAddressClosed once every
// sender has gone away.
func (e *Executor[A]) Run() error {
	e.resetState()

	if s, ok := any(e.actor).(Starter[A]); ok {
		s.Starting(&e.actorCtx)
	}

	err := e.loop()

	if s, ok := any(e.actor).(Stopper[A]); ok {
		e.runStopping(s)
	}

	// Closing here, after the loop and any Stopping hook have both
	// finished, is what makes ShutdownHandle.Shutdown report
	// ErrAlreadyShutdown once this executor has fully torn down instead of
	// reporting success on a run loop that no longer exists to act on it.
	e.states.close()

	return err
}

func (e *Executor[A]) loop() error {
	for {
		switch e.state {
		case stateShutdown:
			return nil
		case stateSendersClosed:
			return ErrAddressClosed
		default:
			e.continuation()
		}
	}
}

// continuation performs one iteration's worth of biased polling between
// the state channel and the mailbox. It is a hand-written specialization
// of BiasedRace's exact three-step strategy (check first, check second,
// then block on both) rather than a direct call to BiasedRace[T], because
// the state channel and the mailbox carry different element types
// (execState vs envelope[A]) and BiasedRace requires both sides to share a
// type.
func (e *Executor[A]) continuation() {
	select {
	case s := <-e.states.recv():
		e.state = s
		return
	default:
	}

	select {
	case env, ok := <-e.mbox.recvChan():
		if !ok {
			e.state = stateSendersClosed
			return
		}

		env.resolve(&e.actorCtx, e.actor, env.message)
		return
	default:
	}

	select {
	case s := <-e.states.recv():
		e.state = s

	case env, ok := <-e.mbox.recvChan():
		if !ok {
			e.state = stateSendersClosed
			return
		}

		env.resolve(&e.actorCtx, e.actor, env.message)
	}
}

// runOutcome lets RunAgainst race two differently-sourced completions
// through the shared BiasedRace[T] primitive by giving both sides the same
// result type.
type runOutcome struct {
	ranToCompletion bool
	err             error
}

// RunAgainst races Run against an externally supplied completion signal
// (commonly a context.Context's Done channel). ranToCompletion reports
// which side resolved first: true means Run itself returned and err is its
// result; false means external resolved first, Run keeps executing in the
// background, and err is always nil.
func (e *Executor[A]) RunAgainst(external <-chan struct{}) (ranToCompletion bool, err error) {
	runDone := make(chan runOutcome, 1)
	go func() {
		runDone <- runOutcome{ranToCompletion: true, err: e.Run()}
	}()

	externalDone := make(chan runOutcome, 1)
	go func() {
		<-external
		externalDone <- runOutcome{ranToCompletion: false}
	}()

	outcome := BiasedRace[runOutcome](runDone, externalDone)

	return outcome.ranToCompletion, outcome.err
}

func (e *Executor[A]) runStopping(s Stopper[A]) {
	if e.cfg.stoppingTimeout.IsNone() {
		s.Stopping(&e.actorCtx)
		return
	}
	timeout := e.cfg.stoppingTimeout.UnwrapOr(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Stopping(&e.actorCtx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case <-done:
	case <-ctx.Done():
		log.WarnS(ctx, "Stopping hook exceeded its timeout; continuing "+
			"shutdown without waiting for it", "timeout", timeout)
	}
}
