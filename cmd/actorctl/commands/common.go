package commands

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/lattice-run/actorkit/internal/baselib/actor"
	"github.com/lattice-run/actorkit/internal/build"
	"github.com/lattice-run/actorkit/internal/supervisor"
)

// setupLogging wires a console handler (and, when logDir is set, a
// rotating file handler) into both the actor and supervisor subsystem
// loggers, mirroring the daemon's dual-stream logging bring-up.
func setupLogging() (closeFn func(), err error) {
	var handlers []btclog.Handler
	handlers = append(handlers, btclog.NewDefaultHandler(os.Stderr))

	closeFn = func() {}

	if logDir != "" {
		rotator := build.NewRotatingLogWriter()
		rotErr := rotator.InitLogRotator(&build.LogRotatorConfig{
			LogDir:         logDir,
			MaxLogFiles:    maxLogFiles,
			MaxLogFileSize: maxLogFileSize,
		})
		if rotErr != nil {
			return closeFn, rotErr
		}

		handlers = append(handlers, btclog.NewDefaultHandler(rotator))
		closeFn = func() { rotator.Close() }
	}

	combined := build.NewHandlerSet(handlers...)
	logger := btclog.NewSLogger(combined)

	level := btclog.LevelInfo
	if verbose {
		level = btclog.LevelDebug
	}
	combined.SetLevel(level)

	actor.UseLogger(logger.WithPrefix("ACTR"))
	supervisor.UseLogger(logger.WithPrefix("SPVR"))

	return closeFn, nil
}
