package commands

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/lattice-run/actorkit/internal/supervisor"
)

var overseerCmd = &cobra.Command{
	Use:   "overseer",
	Short: "Insert a config resource and watch an autobuild factory react",
	Long: `overseer builds an Overseer holding a single config resource and
an autobuild factory that mints a named child handle as soon as that
config is present. It inserts the config, prints the child the factory
built, updates the config, and tears the child down, to exercise
ResourcePool, Factory, and FactorySet end to end.`,
	RunE: runOverseer,
}

// demoConfig is the resource the childFactory watches for.
type demoConfig struct {
	Replicas int
}

// childHandle is what childFactory builds: a uniquely-named placeholder
// standing in for whatever real resource an application's factory would
// construct once its dependency resource appears.
type childHandle struct {
	Name string
}

func (h childHandle) Shutdown(_ *supervisor.ResourcePool) {
	fmt.Printf("tearing down child %s\n", h.Name)
}

// childFactory builds a childHandle once a demoConfig is present in the
// pool, and rebuilds it (with a fresh name) whenever demoConfig changes.
type childFactory struct {
	supervisor.BaseFactory[childHandle]
}

func (f *childFactory) Build(pool *supervisor.ResourcePool) fn.Option[childHandle] {
	if !supervisor.Contains[demoConfig](pool) {
		return fn.None[childHandle]()
	}

	name := "child-" + uuid.New().String()[:8]
	return fn.Some(childHandle{Name: name})
}

func (f *childFactory) OnBuild(_ *supervisor.ResourcePool, handle childHandle) supervisor.Action {
	fmt.Printf("built child %s\n", handle.Name)
	return supervisor.ActionNoop
}

func (f *childFactory) OnUpdate(_ *supervisor.ResourcePool, _ reflect.Type) supervisor.Action {
	return supervisor.ActionRestart
}

func runOverseer(cmd *cobra.Command, args []string) error {
	closeLogs, err := setupLogging()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLogs()

	o := supervisor.NewOverseer[childHandle]()
	o.InsertFactoryAutobuild(&childFactory{})

	fmt.Println("inserting initial config")
	supervisor.InsertResourceMethod[demoConfig](o, demoConfig{Replicas: 1})

	fmt.Println("updating config, factory should restart the child")
	supervisor.UpdateResourceMethod[demoConfig](o, demoConfig{Replicas: 3})

	got, ok := supervisor.Get[demoConfig](o.Pool())
	if !ok {
		return fmt.Errorf("expected config to still be present")
	}
	fmt.Printf("final config: replicas=%d\n", got.Replicas)

	return nil
}
