package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary = lipgloss.Color("#2DD4BF") // Teal
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Primary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// Banner returns the csspress banner
func Banner() string {
	banner := `
 █▀▀ █▀▀ █▀▀ █▀▀█ █▀▀█ █▀▀ █▀▀ █▀▀
 █   ▀▀█ ▀▀█ █  █ █▄▄▀ █▀▀ ▀▀█ ▀▀█
 ▀▀▀ ▀▀▀ ▀▀▀ █▀▀▀ ▀ ▀▀ ▀▀▀ ▀▀▀ ▀▀▀`
	return TitleStyle.Render(banner)
}

// Header renders a section header
func Header(text string) string {
	return TitleStyle.Render("▸ " + text)
}

// Divider renders a divider line
func Divider() string {
	return MutedStyle.Render("─────────────────────────────────────────")
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	fmt.Println(InfoStyle.Render("• " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	fmt.Println(ErrorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	FprintWarning(nil, format, args...)
}

// FprintWarning prints a warning message to w, or stdout when w is nil.
// Commands that stream minified CSS to stdout route warnings to stderr
// so the output stays embeddable.
func FprintWarning(w io.Writer, format string, args ...interface{}) {
	line := WarningStyle.Render("⚠ " + fmt.Sprintf(format, args...))
	if w == nil {
		fmt.Println(line)
		return
	}
	fmt.Fprintln(w, line)
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Printf("  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// VersionLine renders the version line used in command help text
func VersionLine(version string) string {
	return ValueStyle.Render(" Version: " + version)
}

// PrintVersion prints the version
func PrintVersion(version string) {
	fmt.Println(VersionLine(version))
}

// PrintHeader prints the standard header
func PrintHeader(version string) {
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println(Banner())
	PrintVersion(version)
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println()
}
