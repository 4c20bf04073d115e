package note

import (
	"strings"
	"unicode/utf8"

	"github.com/hpungsan/satchel/internal/errors"
)

// MaxTitleLen is the upper bound on title length in runes.
const MaxTitleLen = 50

// Title is a validated note title: trimmed, 1 to 50 characters.
type Title struct {
	value string
}

// NewTitle validates a raw title.
func NewTitle(raw string) (Title, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)
	if length < 1 {
		return Title{}, errors.NewValidation("title cannot be empty")
	}
	if length > MaxTitleLen {
		return Title{}, errors.NewValidationf("title must be at most %d characters", MaxTitleLen)
	}
	return Title{value: trimmed}, nil
}

// String returns the trimmed title.
func (t Title) String() string { return t.value }

// Text is a validated note body: trimmed, at least 10 characters.
type Text struct {
	value string
}

// NewText validates a raw note body.
func NewText(raw string) (Text, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < 10 {
		return Text{}, errors.NewValidation("text must contain at least 10 characters")
	}
	return Text{value: trimmed}, nil
}

// String returns the trimmed body.
func (t Text) String() string { return t.value }

// Tag is a validated note tag: trimmed, at least 3 characters.
type Tag struct {
	value string
}

// NewTag validates a raw tag.
func NewTag(raw string) (Tag, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < 3 {
		return Tag{}, errors.NewValidation("tag must have at least 3 characters")
	}
	return Tag{value: trimmed}, nil
}

// String returns the trimmed tag.
func (t Tag) String() string { return t.value }
