package notebookio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
)

// tagsPrefix marks the optional tag line directly under a heading.
const tagsPrefix = "Tags:"

// ImportResult describes a completed import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// section is one parsed note candidate before validation.
type section struct {
	title string
	tags  []string
	body  []string
}

// Import appends notes parsed from the markdown file at path. Every
// level-2 heading starts a note; a first paragraph beginning with
// "Tags:" carries its tags; remaining paragraphs form the body.
// Sections that fail field validation are skipped, not fatal.
func Import(book *note.Book, path string, now time.Time) (*ImportResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to read import file: %w", err))
	}

	sections := parseSections(source)

	result := &ImportResult{}
	for _, sec := range sections {
		body := strings.Join(sec.body, "\n\n")
		if _, err := book.Add(sec.title, body, sec.tags, now); err != nil {
			result.Skipped++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// parseSections walks goldmark's AST and groups top-level blocks into
// note sections. Content before the first level-2 heading is ignored.
func parseSections(source []byte) []section {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var sections []section
	var current *section

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				continue
			}
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{title: blockText(node, source)}
		case *ast.Paragraph:
			if current == nil {
				continue
			}
			content := blockText(node, source)
			if len(current.tags) == 0 && len(current.body) == 0 && strings.HasPrefix(content, tagsPrefix) {
				current.tags = parseTagLine(content)
				continue
			}
			current.body = append(current.body, content)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// blockText joins the source lines covered by a block node.
func blockText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return strings.TrimSpace(sb.String())
}

// parseTagLine splits "Tags: a, b" into its tag values.
func parseTagLine(line string) []string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, tagsPrefix))
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
