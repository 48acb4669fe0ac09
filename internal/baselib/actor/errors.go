package actor

import "errors"

// ErrAddressClosed is returned by Executor.Run (and reported by RunAgainst)
// when every Address has been closed and the mailbox has shut. Failed sends
// do not use it: Send and TrySend report failure as a false result.
var ErrAddressClosed = errors.New("actor: address closed")

// ErrAlreadyShutdown is returned by ShutdownHandle.Shutdown when the
// executor it targets has already exited its run loop.
var ErrAlreadyShutdown = errors.New("actor: already shutdown")

// ErrUnhandledMessage is raised when an address is used to send a message
// type its actor's HandlerSet has no registration for. Unlike a failed
// send, this is never expected to occur for a correctly constructed actor:
// it indicates a programmer error analogous to the resource pool's
// downcast-mismatch class of bug, not a runtime condition callers should
// plan to recover from.
var ErrUnhandledMessage = errors.New("actor: no handler registered for message type")
