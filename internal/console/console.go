// Package console is the presentation gateway. The state machines send
// structured render requests and read raw user input through the
// Console interface; styling stays on this side of the boundary.
package console

// Console abstracts the terminal for the interactive session. Tests
// substitute a scripted implementation.
type Console interface {
	// Prompt shows a prompt label and returns the raw line the user
	// typed, trimmed. An error means the input stream ended.
	Prompt(label string) (string, error)

	// Println renders one plain line.
	Println(msg string)

	// Successf renders a confirmation line.
	Successf(format string, args ...any)

	// Errorf renders an error line. Errors here are always recoverable;
	// the session re-prompts afterward.
	Errorf(format string, args ...any)

	// Table renders a titled list of rows with named columns.
	Table(title string, columns []string, rows [][]string)
}
