package supervisor

import (
	"reflect"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

// recordingHandle counts how many times it was shut down, so tests can
// assert a FactorySet tore down exactly the handles it meant to.
type recordingHandle struct {
	id         int
	shutdowns  *int
}

func (h recordingHandle) Shutdown(_ *ResourcePool) {
	*h.shutdowns++
}

// spyFactory lets a test script exactly what Build/OnInsert/OnUpdate/
// OnRemove should do, and records how many times Build ran.
type spyFactory struct {
	BaseFactory[recordingHandle]

	shutdowns *int
	builds    *int

	buildOK    bool
	onInsert   Action
	onUpdate   Action
	onRemove   Action
}

func (f *spyFactory) Build(_ *ResourcePool) fn.Option[recordingHandle] {
	*f.builds++
	if !f.buildOK {
		return fn.None[recordingHandle]()
	}
	return fn.Some(recordingHandle{id: *f.builds, shutdowns: f.shutdowns})
}

func (f *spyFactory) OnInsert(_ *ResourcePool, _ reflect.Type) Action { return f.onInsert }
func (f *spyFactory) OnUpdate(_ *ResourcePool, _ reflect.Type) Action { return f.onUpdate }
func (f *spyFactory) OnRemove(_ *ResourcePool, _ reflect.Type) Action { return f.onRemove }

// TestFactorySetAutobuildOnFirstInsert verifies P6: an autobuild factory
// with no handle yet attempts to build as soon as any resource is
// inserted.
func TestFactorySetAutobuildOnFirstInsert(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{shutdowns: &shutdowns, builds: &builds, buildOK: true}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())

	require.Equal(t, 1, builds)
}

// TestFactorySetAutobuildOnlyBuildsOnce verifies a factory with autobuild
// already holding a handle does not rebuild on subsequent inserts.
func TestFactorySetAutobuildOnlyBuildsOnce(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{shutdowns: &shutdowns, builds: &builds, buildOK: true}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())

	Insert(pool, gadget{Name: "x"})
	set.OnAdd(pool, typeOf[gadget]())

	require.Equal(t, 1, builds)
}

// TestFactorySetManualNeverAutobuilds verifies a factory registered
// without autobuild never attempts Build on its own.
func TestFactorySetManualNeverAutobuilds(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{shutdowns: &shutdowns, builds: &builds, buildOK: true}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, false)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())

	require.Equal(t, 0, builds)
}

// TestFactorySetOnInsertActionIsDiscarded verifies the documented Open
// Question resolution: OnAdd calls OnInsert purely for its side effects
// and ignores whatever Action it returns, even ActionShutdown, which
// would otherwise tear down a handle the autobuild step is about to
// create in the same call.
func TestFactorySetOnInsertActionIsDiscarded(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{
		shutdowns: &shutdowns,
		builds:    &builds,
		buildOK:   true,
		onInsert:  ActionShutdown,
	}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())

	// If OnInsert's Action were honored, the freshly-built handle would
	// never exist to shut down (it doesn't exist yet when OnInsert
	// fires), and autobuild would still run afterward. Either way,
	// nothing should have been shut down as a direct result of OnInsert.
	require.Equal(t, 1, builds)
	require.Equal(t, 0, shutdowns)
}

// TestFactorySetOnUpdateHonorsAction verifies OnUpdate, unlike OnInsert,
// does apply the Action its factory returns.
func TestFactorySetOnUpdateHonorsAction(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{
		shutdowns: &shutdowns,
		builds:    &builds,
		buildOK:   true,
		onUpdate:  ActionShutdown,
	}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())
	require.Equal(t, 1, builds)

	set.OnUpdate(pool, typeOf[widget]())
	require.Equal(t, 1, shutdowns)
}

// TestFactorySetRestartRebuildsAfterShutdown verifies ActionRestart tears
// down the current handle and immediately builds a replacement.
func TestFactorySetRestartRebuildsAfterShutdown(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{
		shutdowns: &shutdowns,
		builds:    &builds,
		buildOK:   true,
		onUpdate:  ActionRestart,
	}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())
	require.Equal(t, 1, builds)

	set.OnUpdate(pool, typeOf[widget]())
	require.Equal(t, 1, shutdowns)
	require.Equal(t, 2, builds)
}

// TestFactorySetOnRemoveShutsDownHandle verifies OnRemove applying
// ActionShutdown tears the handle down.
func TestFactorySetOnRemoveShutsDownHandle(t *testing.T) {
	shutdowns, builds := 0, 0
	f := &spyFactory{
		shutdowns: &shutdowns,
		builds:    &builds,
		buildOK:   true,
		onRemove:  ActionShutdown,
	}

	set := NewFactorySet[recordingHandle]()
	set.Insert(f, true)

	pool := NewResourcePool()
	Insert(pool, widget{Count: 1})
	set.OnAdd(pool, typeOf[widget]())
	require.Equal(t, 1, builds)

	set.OnRemove(pool, typeOf[widget]())
	require.Equal(t, 1, shutdowns)
}
