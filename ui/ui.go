package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// Colors (bun-style)
	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	// Styles - exported for use in other packages
	Primary = lipgloss.NewStyle().Foreground(cyan)
	Success = lipgloss.NewStyle().Foreground(green)
	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Console renders the progress transcript. Verbosity and color are fixed at
// construction rather than read from process-wide state, so the batch driver
// receives them explicitly.
type Console struct {
	out     io.Writer
	isTTY   bool
	verbose bool
}

// Options configures a Console.
type Options struct {
	Verbose bool
	NoColor bool
	// Out overrides the output stream; nil means stdout.
	Out io.Writer
}

// NewConsole builds a Console writing to stdout. Colors are disabled when
// stdout is not a terminal or NoColor is set.
func NewConsole(opts Options) *Console {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if !isTTY || opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	} else {
		// Writing anywhere but a real stdout means no spinner either.
		isTTY = false
	}

	return &Console{
		out:     out,
		isTTY:   isTTY,
		verbose: opts.Verbose,
	}
}

// IsVerbose returns whether verbose mode is enabled
func (c *Console) IsVerbose() bool {
	return c.verbose
}

// IsTTY returns whether stdout is a terminal
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// Step prints a step indicator: [1/3] Resolving input groups
func (c *Console) Step(num, total int, msg string) {
	prefix := Dim.Render(fmt.Sprintf("[%d/%d]", num, total))
	fmt.Fprintf(c.out, "%s %s\n", prefix, msg)
}

// Detail prints indented secondary info with arrow
func (c *Console) Detail(msg string) {
	fmt.Fprintf(c.out, "  %s %s\n", Dim.Render("→"), msg)
}

// Verbose prints a message only in verbose mode (indented, dim)
func (c *Console) Verbose(msg string) {
	if c.verbose {
		fmt.Fprintf(c.out, "  %s %s\n", Dim.Render("→"), Dim.Render(msg))
	}
}

// Verbosef prints a formatted message only in verbose mode
func (c *Console) Verbosef(format string, a ...any) {
	if c.verbose {
		c.Verbose(fmt.Sprintf(format, a...))
	}
}

// SuccessMsg prints a success message with checkmark
func (c *Console) SuccessMsg(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", Success.Render("✓"), msg)
}

// ErrorMsg prints an error with formatting and optional hints
func (c *Console) ErrorMsg(title string, err error, hints ...string) {
	fmt.Fprintf(c.out, "%s %s\n", Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		fmt.Fprintf(c.out, "  %s %s\n", Dim.Render("Hint:"), hint)
	}
}

// WarnMsg prints a warning message
func (c *Console) WarnMsg(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", Warning.Render("!"), msg)
}

// FormatDuration formats duration nicely (e.g., "234ms" or "1.2s")
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Println is a simple wrapper for fmt.Fprintln
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf is a simple wrapper for fmt.Fprintf
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
