package note

import (
	"strings"
	"time"

	"github.com/hpungsan/satchel/internal/errors"
)

// Note owns a title, a body, an ordered tag list (duplicates allowed),
// and a date stamp. The stamp is refreshed only when the title changes;
// text and tag edits leave it alone.
type Note struct {
	title   Title
	text    Text
	tags    []Tag
	stamped time.Time
}

// New creates a note stamped with now.
func New(title Title, text Text, tags []Tag, now time.Time) *Note {
	return &Note{title: title, text: text, tags: tags, stamped: now}
}

// Title returns the note's title.
func (n *Note) Title() Title { return n.title }

// Text returns the note's body.
func (n *Note) Text() Text { return n.text }

// Tags returns the tag list in insertion order. Callers must not modify
// the returned slice.
func (n *Note) Tags() []Tag { return n.tags }

// Stamped returns the note's date stamp.
func (n *Note) Stamped() time.Time { return n.stamped }

// SetTitle replaces the title and refreshes the stamp.
func (n *Note) SetTitle(title Title, now time.Time) {
	n.title = title
	n.stamped = now
}

// SetText replaces the body. The stamp is not refreshed.
func (n *Note) SetText(text Text) {
	n.text = text
}

// AddTag appends a tag. Duplicates are allowed.
func (n *Note) AddTag(tag Tag) {
	n.tags = append(n.tags, tag)
}

// ReplaceTag swaps the first tag matching oldValue (case-insensitive)
// for next. The stamp is not refreshed.
func (n *Note) ReplaceTag(oldValue string, next Tag) error {
	for i, tag := range n.tags {
		if strings.EqualFold(tag.String(), oldValue) {
			n.tags[i] = next
			return nil
		}
	}
	return errors.NewNotFound("tag", oldValue)
}

// RemoveTag removes the first tag matching value (case-insensitive).
func (n *Note) RemoveTag(value string) error {
	for i, tag := range n.tags {
		if strings.EqualFold(tag.String(), value) {
			n.tags = append(n.tags[:i], n.tags[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("tag", value)
}

// FirstTag returns the first tag and whether one exists.
func (n *Note) FirstTag() (Tag, bool) {
	if len(n.tags) == 0 {
		return Tag{}, false
	}
	return n.tags[0], true
}
