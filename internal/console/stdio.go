package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Stdio renders to a terminal through lipgloss styles.
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme

	promptStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewStdio creates a console over the given streams with the default
// theme.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	theme := DefaultTheme
	return &Stdio{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,

		promptStyle:  lipgloss.NewStyle().Foreground(theme.Prompt).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(theme.Success),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error),
		headerStyle:  lipgloss.NewStyle().Foreground(theme.Header).Bold(true),
		titleStyle:   lipgloss.NewStyle().Foreground(theme.Header).Bold(true).Underline(true),
		borderStyle:  lipgloss.NewStyle().Foreground(theme.Border),
	}
}

// Prompt shows the label and reads one line. io.EOF propagates so the
// session can treat a closed stdin as exit.
func (s *Stdio) Prompt(label string) (string, error) {
	fmt.Fprint(s.out, s.promptStyle.Render(label+" ❯")+" ")
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println renders one plain line.
func (s *Stdio) Println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// Successf renders a confirmation line.
func (s *Stdio) Successf(format string, args ...any) {
	fmt.Fprintln(s.out, s.successStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf renders an error line.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintln(s.out, s.errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Table renders a titled, bordered table.
func (s *Stdio) Table(title string, columns []string, rows [][]string) {
	if title != "" {
		fmt.Fprintln(s.out, s.titleStyle.Render(title))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.borderStyle).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(s.out, tbl.String())
}
