package actor

import "github.com/btcsuite/btclog/v2"

// log is the package-wide subsystem logger. It defaults to a no-op logger
// so the package is silent until a host binary wires in a real one via
// UseLogger.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the subsystem logger used by this package. Host
// applications call this once during startup, typically right after
// building their log handler set (see internal/build).
func UseLogger(logger btclog.Logger) {
	log = logger
}
