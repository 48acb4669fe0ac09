package supervisor

import (
	"reflect"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// factoryHolder pairs a Factory with the single Handle it currently owns,
// if any, plus whether the holder should attempt to build that handle on
// its own whenever a resource is inserted while it has none.
type factoryHolder[H Handle] struct {
	factory   Factory[H]
	autobuild bool
	handle    fn.Option[H]
}

// handleAction applies action to the holder's current handle. Noop leaves
// the handle untouched; Shutdown tears it down and clears it; Restart tears
// it down, clears it, then immediately tries to build a replacement.
func (h *factoryHolder[H]) handleAction(action Action, pool *ResourcePool) {
	switch action {
	case ActionNoop:
		return

	case ActionShutdown:
		h.takeAndShutdown(pool)

	case ActionRestart:
		h.takeAndShutdown(pool)
		h.tryBuild(pool)
	}
}

func (h *factoryHolder[H]) takeAndShutdown(pool *ResourcePool) {
	if !h.handle.IsSome() {
		return
	}

	var zero H
	handle := h.handle.UnwrapOr(zero)
	h.handle = fn.None[H]()
	log.Debugf("Shutting down factory handle")
	handle.Shutdown(pool)
}

func (h *factoryHolder[H]) tryBuild(pool *ResourcePool) {
	built := h.factory.Build(pool)
	if !built.IsSome() {
		return
	}

	var zero H
	handle := built.UnwrapOr(zero)

	h.handle = fn.Some(handle)
	action := h.factory.OnBuild(pool, handle)
	h.handleAction(action, pool)
}

// FactorySet holds every Factory registered with an Overseer and fans out
// ResourcePool mutation notifications to each of them.
type FactorySet[H Handle] struct {
	holders []*factoryHolder[H]
}

// NewFactorySet returns an empty FactorySet.
func NewFactorySet[H Handle]() *FactorySet[H] {
	return &FactorySet[H]{}
}

// Insert registers factory. When autobuild is true, every resource
// insertion after registration attempts to build this factory's handle
// while it does not already have one.
func (s *FactorySet[H]) Insert(factory Factory[H], autobuild bool) {
	s.holders = append(s.holders, &factoryHolder[H]{
		factory:   factory,
		autobuild: autobuild,
		handle:    fn.None[H](),
	})
}

// OnUpdate notifies every registered factory that the resource identified
// by id was replaced, applying whatever Action each factory returns.
func (s *FactorySet[H]) OnUpdate(pool *ResourcePool, id reflect.Type) {
	for _, h := range s.holders {
		action := h.factory.OnUpdate(pool, id)
		h.handleAction(action, pool)
	}
}

// OnAdd notifies every registered factory that the resource identified by
// id was inserted.
//
// The Action returned by OnInsert is deliberately discarded: this mirrors
// the authoritative original implementation, which calls on_insert purely
// for its side effects and never feeds its return value into
// handle_action. Only the subsequent autobuild attempt (when the holder
// has no handle yet) can change the holder's handle as a result of an
// insert.
func (s *FactorySet[H]) OnAdd(pool *ResourcePool, id reflect.Type) {
	for _, h := range s.holders {
		_ = h.factory.OnInsert(pool, id)

		if h.autobuild && !h.handle.IsSome() {
			h.tryBuild(pool)
		}
	}
}

// OnRemove notifies every registered factory that the resource identified
// by id was removed, applying whatever Action each factory returns.
func (s *FactorySet[H]) OnRemove(pool *ResourcePool, id reflect.Type) {
	for _, h := range s.holders {
		action := h.factory.OnRemove(pool, id)
		h.handleAction(action, pool)
	}
}
