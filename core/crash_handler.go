package core

import (
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
)

// Finalizer is anything that must be restored before the process dies, typically a tcell screen
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashLogger   = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// RegisterCrashTerminal sets the terminal restored by HandleCrash
func RegisterCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// RegisterCrashLogger replaces the stderr logger used by HandleCrash
func RegisterCrashLogger(l zerolog.Logger) {
	crashMu.Lock()
	crashLogger = l
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: restores the terminal, logs the panic value with
// the stack trace, and exits. Deferred at the top of every command entry point.
//
//	defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	logger := crashLogger
	crashMu.Unlock()

	// Restore terminal to sane state before anything hits stderr
	if term != nil {
		term.Fini()
	}

	ev := logger.WithLevel(zerolog.FatalLevel).Bytes("stack", debug.Stack())
	if v, ok := r.(*ContractViolation); ok {
		ev = ev.Str("op", v.Op).
			Stringer("entity", v.Entity).
			Str("component", v.Component)
	}
	ev.Msgf("crash detected: %v", r)

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery routed to HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
