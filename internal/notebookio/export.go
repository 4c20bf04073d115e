// Package notebookio moves a note book to and from a markdown document.
// Each note is a level-2 section: heading, optional "Tags:" line, body.
package notebookio

import (
	"fmt"
	"os"
	"strings"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
)

// ExportResult describes a completed export.
type ExportResult struct {
	Path  string
	Notes int
}

// Export writes every note to a markdown file at path, overwriting any
// existing file.
func Export(book *note.Book, path string) (*ExportResult, error) {
	var sb strings.Builder
	for i, n := range book.Notes() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("## ")
		sb.WriteString(n.Title().String())
		sb.WriteString("\n\n")

		if tags := n.Tags(); len(tags) > 0 {
			values := make([]string, len(tags))
			for i, tag := range tags {
				values[i] = tag.String()
			}
			sb.WriteString("Tags: ")
			sb.WriteString(strings.Join(values, ", "))
			sb.WriteString("\n\n")
		}

		sb.WriteString(n.Text().String())
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}

	return &ExportResult{Path: path, Notes: book.Len()}, nil
}
