// Package session drives the interactive assistant: a main menu that
// dispatches into the contacts and notes submenus, each a loop reading
// command tokens until back or exit.
package session

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/hpungsan/satchel/internal/console"
	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
	"github.com/hpungsan/satchel/internal/suggest"
)

// mainCommands is the top-level vocabulary, also fed to the suggester.
var mainCommands = []string{"contacts", "notes", "help", "exit"}

// Options tunes a session. Zero values fall back to defaults.
type Options struct {
	// BirthdayWindow is the default lookahead for the birthdays command.
	BirthdayWindow int

	// SuggestThreshold gates command suggestions for unknown tokens.
	SuggestThreshold float64

	// Now supplies the current time; tests pin it.
	Now func() time.Time
}

// Session owns the in-memory books for one interactive run. Not safe
// for concurrent use; the session model is strictly one pending prompt
// at a time.
type Session struct {
	contacts  *contact.Book
	notes     *note.Book
	console   console.Console
	window    int
	threshold float64
	now       func() time.Time
}

// New wires a session over the given books and console.
func New(contacts *contact.Book, notes *note.Book, c console.Console, opts Options) *Session {
	window := opts.BirthdayWindow
	if window <= 0 {
		window = contact.DefaultBirthdayWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		contacts:  contacts,
		notes:     notes,
		console:   c,
		window:    window,
		threshold: opts.SuggestThreshold,
		now:       now,
	}
}

// Run drives the main menu until the user exits or the input stream
// ends. The caller is responsible for saving the snapshot afterward.
func (s *Session) Run() {
	s.console.Println("Welcome to the assistant bot!")
	s.renderMainHelp()

	for {
		line, err := s.console.Prompt("Enter a command")
		if err != nil {
			return
		}
		cmd, args := parseInput(line)
		if cmd == "" {
			continue
		}
		if s.dispatchMain(cmd, args) == SignalExit {
			return
		}
	}
}

// dispatchMain handles one main-menu token. Unknown tokens go through
// the suggester; a decline is a no-op.
func (s *Session) dispatchMain(cmd string, args []string) Signal {
	switch cmd {
	case "contacts":
		if s.runContacts() == SignalExit {
			return SignalExit
		}
		return SignalContinue
	case "notes":
		if s.runNotes() == SignalExit {
			return SignalExit
		}
		return SignalContinue
	case "help":
		s.renderMainHelp()
		return SignalContinue
	case "exit", "close":
		return SignalExit
	default:
		return s.suggestMain(cmd, args)
	}
}

// suggestMain offers the closest main-menu command for an unknown token
// and dispatches it when the user confirms.
func (s *Session) suggestMain(cmd string, args []string) Signal {
	candidate, ok := suggest.Command(cmd, mainCommands, s.threshold)
	if !ok {
		s.console.Errorf("Unknown command %q. Type 'help' to see the menu.", cmd)
		return SignalContinue
	}

	answer, err := s.console.Prompt(fmt.Sprintf("Did you mean %q? (y/n)", candidate))
	if err != nil {
		return SignalExit
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		return s.dispatchMain(candidate, args)
	}
	return SignalContinue
}

// renderMainHelp shows the top-level menu.
func (s *Session) renderMainHelp() {
	s.console.Table("Main menu", []string{"Command", "Description"}, [][]string{
		{"contacts", "Manage your contact book"},
		{"notes", "Manage your notes"},
		{"help", "Show this menu"},
		{"exit", "Save and quit"},
	})
}

// promptValue reads one value inside an interactive sub-flow. The
// returned signal is SignalBack when the user aborts the step and
// SignalExit when the session must unwind; the value is only meaningful
// with SignalContinue. back and exit are reserved words at these
// prompts.
func (s *Session) promptValue(label string) (string, Signal) {
	for {
		value, err := s.console.Prompt(label)
		if err != nil {
			return "", SignalExit
		}
		switch strings.ToLower(value) {
		case "":
			continue
		case "back":
			return "", SignalBack
		case "exit":
			return "", SignalExit
		default:
			return value, SignalContinue
		}
	}
}

// report renders a recoverable error and returns control to the loop.
func (s *Session) report(err error) {
	if err == nil {
		return
	}
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		s.console.Errorf("%s", appErr.Message)
		return
	}
	// Unclassified failures render generically; they never terminate
	// the session.
	s.console.Errorf("Unknown error: %v", err)
}

// parseInput splits a raw line into a lowercased command token and its
// arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
