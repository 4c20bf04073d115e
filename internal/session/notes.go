package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
	"github.com/hpungsan/satchel/internal/notebookio"
)

// defaultExportPath is used when the export command gets no argument.
const defaultExportPath = "satchel-notes.md"

// stampLayout renders a note's date stamp in listings.
const stampLayout = "02.01.2006"

// runNotes is the notes submenu loop.
func (s *Session) runNotes() Signal {
	s.renderNoteHelp()
	for {
		line, err := s.console.Prompt("notes")
		if err != nil {
			return SignalExit
		}
		cmd, args := parseInput(line)
		if cmd == "" {
			continue
		}
		if sig := s.dispatchNote(cmd, args); sig != SignalContinue {
			return sig
		}
	}
}

func (s *Session) dispatchNote(cmd string, args []string) Signal {
	switch cmd {
	case "back":
		return SignalBack
	case "exit", "close":
		return SignalExit
	case "help":
		s.renderNoteHelp()
	case "add":
		return s.noteAddFlow()
	case "all":
		s.renderNoteListing("Notes")
	case "find":
		s.report(s.handleFindNotes(args))
	case "sort":
		s.handleSortNotes()
	case "update":
		return s.noteUpdateFlow()
	case "remove":
		return s.noteRemoveFlow()
	case "export":
		s.report(s.handleExport(args))
	case "import":
		s.report(s.handleImport(args))
	default:
		s.console.Errorf("Unknown notes command %q. Type 'help' to see the menu.", cmd)
	}
	return SignalContinue
}

// noteAddFlow collects a title, a body, and optional tags.
func (s *Session) noteAddFlow() Signal {
	title, sig := s.promptValue("Title")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}
	text, sig := s.promptValue("Text")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}

	// Tags are optional: an empty line means none, so promptValue's
	// empty-line retry does not apply here.
	tagLine, err := s.console.Prompt("Tags (space-separated, optional)")
	if err != nil {
		return SignalExit
	}
	switch strings.ToLower(tagLine) {
	case "back":
		return SignalContinue
	case "exit":
		return SignalExit
	}

	n, err := s.notes.Add(title, text, strings.Fields(tagLine), s.now())
	if err != nil {
		s.report(err)
		return SignalContinue
	}
	s.console.Successf("Note %q added.", n.Title())
	return SignalContinue
}

// renderNoteListing shows all notes with their 1-based positional IDs.
// These IDs are only valid against this listing: deletes shift them.
func (s *Session) renderNoteListing(title string) {
	notes := s.notes.Notes()
	if len(notes) == 0 {
		s.console.Println("There are no notes yet. Start adding.")
		return
	}
	rows := make([][]string, 0, len(notes))
	for i, n := range notes {
		rows = append(rows, noteRow(strconv.Itoa(i+1), n))
	}
	s.console.Table(title, []string{"ID", "Title", "Tags", "Date", "Text"}, rows)
}

func (s *Session) handleFindNotes(args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgument("find <keywords...>")
	}
	matches := s.notes.FindByKeyword(args)
	if len(matches) == 0 {
		s.console.Println(fmt.Sprintf("No notes match %s.", strings.Join(args, " ")))
		return nil
	}

	// Display only: no ID column, since positional IDs belong to the
	// full listing.
	rows := make([][]string, 0, len(matches))
	for _, n := range matches {
		rows = append(rows, noteRow("", n)[1:])
	}
	s.console.Table("Matching notes", []string{"Title", "Tags", "Date", "Text"}, rows)
	return nil
}

func (s *Session) handleSortNotes() {
	sorted := s.notes.SortByTag()
	if len(sorted) == 0 {
		s.console.Println("There are no notes yet. Start adding.")
		return
	}
	rows := make([][]string, 0, len(sorted))
	for _, n := range sorted {
		rows = append(rows, noteRow("", n)[1:])
	}
	s.console.Table("Notes by first tag", []string{"Title", "Tags", "Date", "Text"}, rows)
}

// promptNoteID renders a fresh listing and resolves a 1-based ID
// against it. The listing must immediately precede the prompt: IDs are
// positional, not durable.
func (s *Session) promptNoteID(title string) (*note.Note, int, Signal) {
	if s.notes.Len() == 0 {
		s.console.Println("There are no notes yet. Start adding.")
		return nil, 0, SignalBack
	}
	s.renderNoteListing(title)

	for {
		value, sig := s.promptValue("Note id")
		if sig != SignalContinue {
			return nil, 0, sig
		}

		id, err := strconv.Atoi(value)
		if err != nil {
			s.report(errors.NewValidationf("note id must be a number, got %q", value))
			continue
		}
		n, err := s.notes.Get(id)
		if err != nil {
			s.report(err)
			continue
		}
		return n, id, SignalContinue
	}
}

// noteUpdateFlow edits one note selected by positional ID.
func (s *Session) noteUpdateFlow() Signal {
	n, _, sig := s.promptNoteID("Notes")
	if sig == SignalExit {
		return SignalExit
	}
	if sig == SignalBack {
		return SignalContinue
	}

	for {
		field, sig := s.promptValue("Update what (title | text | tag) or back")
		if sig == SignalExit {
			return SignalExit
		}
		if sig == SignalBack {
			return SignalContinue
		}

		switch strings.ToLower(field) {
		case "title":
			value, sig := s.promptValue("New title")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			title, err := note.NewTitle(value)
			if err != nil {
				s.report(err)
				continue
			}
			n.SetTitle(title, s.now())
			s.console.Successf("Title updated to %q.", title)
		case "text":
			value, sig := s.promptValue("New text")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			text, err := note.NewText(value)
			if err != nil {
				s.report(err)
				continue
			}
			n.SetText(text)
			s.console.Successf("Text of %q updated.", n.Title())
		case "tag":
			if sig := s.replaceTagStep(n); sig == SignalExit {
				return SignalExit
			}
		default:
			s.console.Errorf("Choose one of: title, text, tag, back.")
		}
	}
}

// replaceTagStep prompts for the tag to replace and its new value.
func (s *Session) replaceTagStep(n *note.Note) Signal {
	oldValue, sig := s.promptValue("Tag to replace")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}
	newValue, sig := s.promptValue("New tag")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}

	tag, err := note.NewTag(newValue)
	if err != nil {
		s.report(err)
		return SignalContinue
	}
	if err := n.ReplaceTag(oldValue, tag); err != nil {
		s.report(err)
		return SignalContinue
	}
	s.console.Successf("Tag %q replaced with %q.", oldValue, tag)
	return SignalContinue
}

// noteRemoveFlow deletes one note selected by positional ID.
func (s *Session) noteRemoveFlow() Signal {
	n, id, sig := s.promptNoteID("Notes")
	if sig == SignalExit {
		return SignalExit
	}
	if sig == SignalBack {
		return SignalContinue
	}

	if err := s.notes.DeleteByID(id); err != nil {
		s.report(err)
		return SignalContinue
	}
	s.console.Successf("Note %q removed.", n.Title())
	return SignalContinue
}

func (s *Session) handleExport(args []string) error {
	path := defaultExportPath
	if len(args) > 0 {
		path = args[0]
	}
	result, err := notebookio.Export(s.notes, path)
	if err != nil {
		return err
	}
	s.console.Successf("Exported %d notes to %s.", result.Notes, result.Path)
	return nil
}

func (s *Session) handleImport(args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgument("import <path>")
	}
	result, err := notebookio.Import(s.notes, args[0], s.now())
	if err != nil {
		return err
	}
	if result.Skipped > 0 {
		s.console.Successf("Imported %d notes from %s (%d skipped).", result.Imported, args[0], result.Skipped)
	} else {
		s.console.Successf("Imported %d notes from %s.", result.Imported, args[0])
	}
	return nil
}

// noteRow flattens a note for table rendering; index [0] is the ID
// cell, stripped for display-only listings.
func noteRow(id string, n *note.Note) []string {
	tags := make([]string, 0, len(n.Tags()))
	for _, tag := range n.Tags() {
		tags = append(tags, tag.String())
	}
	return []string{
		id,
		n.Title().String(),
		strings.Join(tags, ", "),
		n.Stamped().Format(stampLayout),
		previewText(n.Text().String()),
	}
}

// previewText truncates a note body to one table cell.
func previewText(text string) string {
	const maxPreview = 60
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= maxPreview {
		return text
	}
	return string(runes[:maxPreview-3]) + "..."
}

func (s *Session) renderNoteHelp() {
	s.console.Table("Notes menu", []string{"Command", "Description"}, [][]string{
		{"add", "Add a note (prompts for title, text, tags)"},
		{"update", "Pick a note by id and edit it"},
		{"remove", "Pick a note by id and delete it"},
		{"find <keywords...>", "Search titles and tags"},
		{"sort", "List notes ordered by first tag"},
		{"all", "List every note"},
		{"export [path]", "Write notes to a markdown file"},
		{"import <path>", "Read notes from a markdown file"},
		{"help", "Show this menu"},
		{"back", "Return to the main menu"},
		{"exit", "Save and quit"},
	})
}
