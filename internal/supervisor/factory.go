package supervisor

import (
	"reflect"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/lattice-run/actorkit/internal/baselib/actor"
)

// Handle is anything a Factory can build and that the supervisor can later
// tear down. The original crate's ActorHandle, wrapping a ShutdownHandle,
// is the canonical implementation.
type Handle interface {
	Shutdown(pool *ResourcePool)
}

// ActorHandle adapts an actor.ShutdownHandle into a Handle, letting a
// Factory build actors and have the supervisor shut them down uniformly
// alongside any other kind of Handle.
type ActorHandle struct {
	shutdown actor.ShutdownHandle
}

// NewActorHandle wraps handle as a Handle.
func NewActorHandle(handle actor.ShutdownHandle) ActorHandle {
	return ActorHandle{shutdown: handle}
}

// Shutdown requests the wrapped actor stop. Failure (the actor already
// shut down on its own) is not surfaced here: by the time a FactoryHolder
// calls Shutdown, it only cares that the handle is no longer its
// responsibility, the same way the original crate's Handle::shutdown
// discards ActorHandle's inner shutdown() error.
func (a ActorHandle) Shutdown(pool *ResourcePool) {
	_ = a.shutdown.Shutdown()
}

// Action tells a FactorySet what to do with a FactoryHolder's current
// handle after one of the Factory protocol's callbacks runs.
type Action int

const (
	// ActionNoop keeps whatever handle (if any) the holder currently has.
	ActionNoop Action = iota

	// ActionShutdown tears down the current handle, if any, and leaves
	// the holder without one.
	ActionShutdown

	// ActionRestart tears down the current handle, if any, then
	// immediately calls the factory's Build to produce a replacement.
	ActionRestart
)

// Factory observes ResourcePool mutations and owns a single Handle of type
// H built in reaction to them. All four observer callbacks default to
// ActionNoop (via BaseFactory, which factory authors should embed); only
// Build has no default, since a factory that cannot build anything is not
// meaningful.
type Factory[H Handle] interface {
	// Build attempts to construct this factory's handle from the pool's
	// current contents. fn.None indicates the factory's preconditions
	// are not met yet (e.g. a dependent resource is missing).
	Build(pool *ResourcePool) fn.Option[H]

	// OnBuild runs right after Build succeeds.
	OnBuild(pool *ResourcePool, handle H) Action

	// OnInsert runs whenever any resource is inserted into the pool.
	// Its returned Action is intentionally discarded by FactorySet.OnAdd
	// before the autobuild check runs — see factoryset.go.
	OnInsert(pool *ResourcePool, id reflect.Type) Action

	// OnUpdate runs whenever any resource already in the pool is
	// replaced.
	OnUpdate(pool *ResourcePool, id reflect.Type) Action

	// OnRemove runs whenever any resource is removed from the pool.
	OnRemove(pool *ResourcePool, id reflect.Type) Action
}

// BaseFactory supplies ActionNoop defaults for every Factory callback
// except Build. Embed it in a concrete factory type and override only the
// callbacks that need to do something.
type BaseFactory[H Handle] struct{}

// OnBuild is a no-op default.
func (BaseFactory[H]) OnBuild(_ *ResourcePool, _ H) Action { return ActionNoop }

// OnInsert is a no-op default.
func (BaseFactory[H]) OnInsert(_ *ResourcePool, _ reflect.Type) Action { return ActionNoop }

// OnUpdate is a no-op default.
func (BaseFactory[H]) OnUpdate(_ *ResourcePool, _ reflect.Type) Action { return ActionNoop }

// OnRemove is a no-op default.
func (BaseFactory[H]) OnRemove(_ *ResourcePool, _ reflect.Type) Action { return ActionNoop }
