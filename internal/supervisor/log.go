package supervisor

import "github.com/btcsuite/btclog/v2"

// log is the package-wide subsystem logger, defaulting to a no-op logger
// until a host binary wires in a real one via UseLogger.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the subsystem logger used by this package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
