package solver

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in tracing for the reduction/enumeration pipeline.
// Enable by setting env var MINESWEEPR_TRACE=1, or by calling
// EnableTrace/DisableTrace directly (handy from a test or a one-off CLI
// run).

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("MINESWEEPR_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on pipeline tracing to the standard logger for the
// remainder of the process.
func EnableTrace() { traceEnabled.Store(true) }

// DisableTrace turns off pipeline tracing.
func DisableTrace() { traceEnabled.Store(false) }

func tracef(format string, args ...interface{}) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[solver] "+format, args...)
}
