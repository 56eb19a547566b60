// Package style provides shared styling primitives for CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#111827")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Amber  = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Header renders section headers in CLI output.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Teal)

// Muted renders secondary information such as descriptions.
var Muted = lipgloss.NewStyle().Foreground(Slate)
