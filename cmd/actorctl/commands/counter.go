package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lattice-run/actorkit/internal/baselib/actor"
)

var counterBumps int

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Spawn a demo actor and send it a run of Bump messages",
	Long: `counter spawns a single tiny actor that keeps a running total,
sends it the requested number of Bump messages, then asks it to stop and
prints the final total. It exists to exercise the Executor event loop,
Address, and HandlerSet end to end from the command line.`,
	RunE: runCounter,
}

func init() {
	counterCmd.Flags().IntVar(
		&counterBumps, "bumps", 10,
		"Number of Bump messages to send before stopping",
	)
}

// bump asks the counter actor to add Amount to its running total.
type bump struct {
	actor.BaseMessage
	Amount int
}

// stop asks the counter actor to shut itself down. Messages queued before
// it have already been handled by then; the shutdown does not drain
// anything queued after it.
type stop struct {
	actor.BaseMessage
}

// demoCounter is the actor state: a running total updated one Bump at a
// time, strictly in the order messages were sent.
type demoCounter struct {
	total int
}

func (c *demoCounter) Starting(ctx *actor.Context[demoCounter]) {
	fmt.Println("counter actor starting")
}

func (c *demoCounter) Stopping(ctx *actor.Context[demoCounter]) {
	fmt.Printf("counter actor stopping, total=%d\n", c.total)
}

func newCounterHandlers() *actor.HandlerSet[demoCounter] {
	set := actor.NewHandlerSet[demoCounter]()

	actor.Register(set, func(ctx *actor.Context[demoCounter], c *demoCounter, msg bump) {
		c.total += msg.Amount
	})

	actor.Register(set, func(ctx *actor.Context[demoCounter], c *demoCounter, msg stop) {
		ctx.Shutdown()
	})

	return set
}

func runCounter(cmd *cobra.Command, args []string) error {
	closeLogs, err := setupLogging()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLogs()

	c := &demoCounter{}
	exec, addr := actor.NewExecutor(c, newCounterHandlers())

	done := make(chan error, 1)
	go func() { done <- exec.Run() }()

	ctx := context.Background()
	for i := 1; i <= counterBumps; i++ {
		addr.Send(ctx, bump{Amount: i})
	}
	addr.Send(ctx, stop{})

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("actor exited with error: %w", err)
		}
	case <-time.After(5 * time.Second):
		return fmt.Errorf("actor did not stop within 5s")
	}

	fmt.Printf("final total: %d\n", c.total)
	return nil
}
