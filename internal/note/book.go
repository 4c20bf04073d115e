package note

import (
	"sort"
	"strings"
	"time"

	"github.com/hpungsan/satchel/internal/errors"
)

// Book owns all notes in append-only insertion order. Notes have no
// durable identifier: callers address them by 1-based position in the
// most recently rendered listing.
type Book struct {
	notes []*Note
}

// NewBook creates an empty note book.
func NewBook() *Book {
	return &Book{}
}

// Len returns the number of notes.
func (b *Book) Len() int { return len(b.notes) }

// Notes returns all notes in insertion order. Callers must not modify
// the returned slice.
func (b *Book) Notes() []*Note { return b.notes }

// Add validates the inputs and appends a new note. Tags and titles are
// not deduplicated.
func (b *Book) Add(rawTitle, rawText string, rawTags []string, now time.Time) (*Note, error) {
	title, err := NewTitle(rawTitle)
	if err != nil {
		return nil, err
	}
	text, err := NewText(rawText)
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, 0, len(rawTags))
	for _, raw := range rawTags {
		tag, err := NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	n := New(title, text, tags, now)
	b.notes = append(b.notes, n)
	return n, nil
}

// Get returns the note at the 1-based position id.
func (b *Book) Get(id int) (*Note, error) {
	if id < 1 || id > len(b.notes) {
		return nil, errors.NewOutOfRange(id, len(b.notes))
	}
	return b.notes[id-1], nil
}

// DeleteByID removes the note at the 1-based position id. Positions of
// subsequent notes shift down by one.
func (b *Book) DeleteByID(id int) error {
	if id < 1 || id > len(b.notes) {
		return errors.NewOutOfRange(id, len(b.notes))
	}
	b.notes = append(b.notes[:id-1], b.notes[id:]...)
	return nil
}

// FindByKeyword returns notes matched by any keyword, each at most once,
// in book order. Keywords are trimmed, case-folded, and dropped when
// empty. A note matches when a keyword is a substring of its title or of
// any of its tags, case-insensitively.
func (b *Book) FindByKeyword(keywords []string) []*Note {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	var matched []*Note
	for _, n := range b.notes {
		if matchesAny(n, cleaned) {
			matched = append(matched, n)
		}
	}
	return matched
}

// matchesAny reports whether any keyword hits the note's title or tags.
func matchesAny(n *Note, keywords []string) bool {
	title := strings.ToLower(n.Title().String())
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
		for _, tag := range n.Tags() {
			if strings.Contains(strings.ToLower(tag.String()), kw) {
				return true
			}
		}
	}
	return false
}

// SortByTag returns a new sequence: tagged notes first, sorted ascending
// by the case-folded value of their first tag (stable, ties keep book
// order), then untagged notes in their original relative order. The
// book's own storage order is untouched.
func (b *Book) SortByTag() []*Note {
	var tagged, untagged []*Note
	for _, n := range b.notes {
		if _, ok := n.FirstTag(); ok {
			tagged = append(tagged, n)
		} else {
			untagged = append(untagged, n)
		}
	}

	sort.SliceStable(tagged, func(i, j int) bool {
		first, _ := tagged[i].FirstTag()
		second, _ := tagged[j].FirstTag()
		return strings.ToLower(first.String()) < strings.ToLower(second.String())
	})

	return append(tagged, untagged...)
}

// Restore re-appends a note loaded from a snapshot. Used by the
// persistence gateway only.
func (b *Book) Restore(n *Note) {
	b.notes = append(b.notes, n)
}
