package console

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the terminal output. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	Prompt  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Header  lipgloss.Color
	Border  lipgloss.Color
	Faint   lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	Prompt:  lipgloss.Color("75"),  // blue
	Success: lipgloss.Color("114"), // green
	Error:   lipgloss.Color("196"), // red
	Header:  lipgloss.Color("255"), // bright white
	Border:  lipgloss.Color("240"), // dim gray
	Faint:   lipgloss.Color("245"), // gray
}
