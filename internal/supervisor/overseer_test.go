package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lattice-run/actorkit/internal/baselib/actor"
)

// noopHandle is a Handle that does nothing on Shutdown, used wherever a
// test only needs Overseer[H]'s resource bookkeeping and not the factory
// protocol.
type noopHandle struct{}

func (noopHandle) Shutdown(_ *ResourcePool) {}

// TestOverseerInsertResourceMethodOverwrites verifies the synchronous
// method always replaces and returns the previous value.
func TestOverseerInsertResourceMethodOverwrites(t *testing.T) {
	o := NewOverseer[noopHandle]()

	_, had := InsertResourceMethod[widget](o, widget{Count: 1})
	require.False(t, had)

	previous, had := InsertResourceMethod[widget](o, widget{Count: 2})
	require.True(t, had)
	require.Equal(t, widget{Count: 1}, previous)

	got, ok := Get[widget](o.Pool())
	require.True(t, ok)
	require.Equal(t, widget{Count: 2}, got)
}

// TestOverseerUpdateResourceMethodRequiresExisting verifies
// UpdateResourceMethod is a no-op when nothing is present yet.
func TestOverseerUpdateResourceMethodRequiresExisting(t *testing.T) {
	o := NewOverseer[noopHandle]()

	_, ok := UpdateResourceMethod[widget](o, widget{Count: 5})
	require.False(t, ok)
	require.False(t, Contains[widget](o.Pool()))

	InsertResourceMethod[widget](o, widget{Count: 1})
	previous, ok := UpdateResourceMethod[widget](o, widget{Count: 5})
	require.True(t, ok)
	require.Equal(t, widget{Count: 1}, previous)

	got, _ := Get[widget](o.Pool())
	require.Equal(t, widget{Count: 5}, got)
}

// buildOverseerHandlers wires up the four resource messages for widget on
// a fresh Overseer[noopHandle] handler set.
func buildOverseerHandlers() *actor.HandlerSet[Overseer[noopHandle]] {
	set := actor.NewHandlerSet[Overseer[noopHandle]]()
	RegisterResourceHandlers[noopHandle, widget](set)
	return set
}

// TestInsertResourceMessageNoopsOnDuplicate verifies the documented
// asymmetry: the InsertResource message leaves an existing value
// untouched, unlike InsertResourceMethod.
func TestInsertResourceMessageNoopsOnDuplicate(t *testing.T) {
	o := NewOverseer[noopHandle]()
	exec, addr := actor.NewExecutor(o, buildOverseerHandlers())

	done := make(chan error, 1)
	go func() { done <- exec.Run() }()
	time.Sleep(20 * time.Millisecond)

	ctx := context.Background()
	require.True(t, addr.Send(ctx, InsertResource[widget]{Value: widget{Count: 1}}))
	require.True(t, addr.Send(ctx, InsertResource[widget]{Value: widget{Count: 99}}))

	require.NoError(t, exec.ShutdownHandle().Shutdown())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not stop")
	}

	got, ok := Get[widget](exec.Actor().Pool())
	require.True(t, ok)
	require.Equal(t, widget{Count: 1}, got)
}

// TestUpdateResourceMessageReplacesExisting verifies UpdateResource does
// overwrite, unlike InsertResource.
func TestUpdateResourceMessageReplacesExisting(t *testing.T) {
	o := NewOverseer[noopHandle]()
	exec, addr := actor.NewExecutor(o, buildOverseerHandlers())

	go func() { exec.Run() }()
	time.Sleep(20 * time.Millisecond)

	ctx := context.Background()
	require.True(t, addr.Send(ctx, InsertResource[widget]{Value: widget{Count: 1}}))
	require.True(t, addr.Send(ctx, UpdateResource[widget]{Value: widget{Count: 42}}))

	require.Eventually(t, func() bool {
		got, ok := Get[widget](exec.Actor().Pool())
		return ok && got.Count == 42
	}, 2*time.Second, 5*time.Millisecond)

	exec.ShutdownHandle().Shutdown()
}

// TestRemoveResourceMessageDeletes verifies RemoveResource removes the
// stored value.
func TestRemoveResourceMessageDeletes(t *testing.T) {
	o := NewOverseer[noopHandle]()
	exec, addr := actor.NewExecutor(o, buildOverseerHandlers())

	go func() { exec.Run() }()
	time.Sleep(20 * time.Millisecond)

	ctx := context.Background()
	require.True(t, addr.Send(ctx, InsertResource[widget]{Value: widget{Count: 1}}))
	require.True(t, addr.Send(ctx, RemoveResource[widget]{}))

	require.Eventually(t, func() bool {
		return !Contains[widget](exec.Actor().Pool())
	}, 2*time.Second, 5*time.Millisecond)

	exec.ShutdownHandle().Shutdown()
}

// TestUpdateOrInsertResourceMessageHandlesBothCases verifies
// UpdateOrInsertResource inserts when absent and updates when present.
func TestUpdateOrInsertResourceMessageHandlesBothCases(t *testing.T) {
	o := NewOverseer[noopHandle]()
	exec, addr := actor.NewExecutor(o, buildOverseerHandlers())

	go func() { exec.Run() }()
	time.Sleep(20 * time.Millisecond)

	ctx := context.Background()
	require.True(t, addr.Send(ctx, UpdateOrInsertResource[widget]{Value: widget{Count: 1}}))
	require.Eventually(t, func() bool {
		got, ok := Get[widget](exec.Actor().Pool())
		return ok && got.Count == 1
	}, 2*time.Second, 5*time.Millisecond)

	require.True(t, addr.Send(ctx, UpdateOrInsertResource[widget]{Value: widget{Count: 2}}))
	require.Eventually(t, func() bool {
		got, ok := Get[widget](exec.Actor().Pool())
		return ok && got.Count == 2
	}, 2*time.Second, 5*time.Millisecond)

	exec.ShutdownHandle().Shutdown()
}
