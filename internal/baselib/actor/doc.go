// Package actor implements a lightweight actor runtime: isolated actors
// that process an inbound FIFO mailbox on a single goroutine, addressed by
// cloneable strong and weak handles, driven by an Executor event loop that
// multiplexes message delivery with out-of-band lifecycle control.
package actor
