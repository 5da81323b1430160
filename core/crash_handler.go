package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	hookMu     sync.Mutex
	resetHooks []func()
)

// RegisterResetHook adds fn to run before a crash report is printed
// The terminal renderer registers its screen finalizer here so the stack trace lands on a sane tty
func RegisterResetHook(fn func()) {
	hookMu.Lock()
	defer hookMu.Unlock()
	resetHooks = append(resetHooks, fn)
}

// runResetHooks runs hooks newest-first; a panicking hook does not stop the rest
func runResetHooks() {
	hookMu.Lock()
	hooks := append([]func(){}, resetHooks...)
	hookMu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		func() {
			defer func() { _ = recover() }()
			hooks[i]()
		}()
	}
}

// exit is replaced in tests
var exit = os.Exit

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	runResetHooks()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
