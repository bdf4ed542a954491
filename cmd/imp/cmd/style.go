package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	addStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	delStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

var useColor bool

// setupColor resolves the color mode once flags and environment are
// known. NO_COLOR and IMP_COLOR apply unless --color was given.
func setupColor() {
	mode := colorMode
	if !rootCmd.PersistentFlags().Changed("color") {
		if env := os.Getenv("IMP_COLOR"); env != "" {
			mode = env
		}
		if os.Getenv("NO_COLOR") != "" {
			mode = "never"
		}
	}
	switch mode {
	case "always":
		useColor = true
	case "never":
		useColor = false
	default:
		useColor = isatty.IsTerminal(os.Stdout.Fd())
	}
}

func paint(style lipgloss.Style, s string) string {
	if !useColor {
		return s
	}
	return style.Render(s)
}
