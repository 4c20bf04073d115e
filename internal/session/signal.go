package session

// Signal is the tri-state result of every command handler. Callers
// propagate it instead of unwinding control flow: back pops one menu
// level, exit unwinds every level and ends the session.
type Signal int

const (
	// SignalContinue keeps the current loop running.
	SignalContinue Signal = iota

	// SignalBack returns control to the enclosing menu.
	SignalBack

	// SignalExit ends the session from any nesting depth.
	SignalExit
)
