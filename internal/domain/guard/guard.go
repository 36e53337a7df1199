// Package guard keeps an uncooperative analyzer invocation from
// terminating the host process: termination requests made through Exit
// are intercepted for the duration of a RunIsolated call.
package guard

import "os"

// exitAttempt is the sentinel carried by the interception panic.
type exitAttempt struct {
	code int
}

// policy is the active termination policy. Package-level mutable state:
// RunIsolated swaps it around a single synchronous call, so concurrent
// guarded invocations are not supported. Run the analyzer as a child
// process if isolation across goroutines is needed.
var policy = os.Exit

// Exit requests process termination through the active policy.
// In-process analyzers call this instead of os.Exit so that RunIsolated
// can intercept the request. Outside RunIsolated it ends the process.
func Exit(code int) {
	policy(code)
}

// RunIsolated runs action with termination requests intercepted. An
// intercepted request is swallowed: the analyzer requests exit on normal
// completion too, so "exit requested" carries no signal at this layer.
// The prior policy is restored on every exit path. Errors returned by
// action propagate unchanged, as do foreign panics.
func RunIsolated(action func() error) (err error) {
	prev := policy
	policy = func(code int) {
		panic(exitAttempt{code: code})
	}
	defer func() {
		policy = prev
		if r := recover(); r != nil {
			if _, ok := r.(exitAttempt); ok {
				return
			}
			panic(r)
		}
	}()
	return action()
}
