package ux

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color helpers. They are blanked when NO_COLOR is set or stdout is
// not a terminal.
var (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func init() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		DisableColor()
	}
}

// DisableColor turns every color helper into an empty string.
func DisableColor() {
	Reset, Bold, Dim, Red, Green, Yellow, Cyan = "", "", "", "", "", "", ""
}

// Error prints "error: msg" in red.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
}

// Warn prints a yellow warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s⚠ %s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// OK prints a green check line.
func OK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s✓ %s%s\n", Green, fmt.Sprintf(format, args...), Reset)
}

// Listening prints the serve banner.
func Listening(w io.Writer, name, url string) {
	fmt.Fprintf(w, "\n%s%s%s docs site listening on %s%s%s\n", Bold, name, Reset, Cyan, url, Reset)
	fmt.Fprintf(w, "%sPress Ctrl+C to stop.%s\n\n", Dim, Reset)
}

// Exported prints the export summary.
func Exported(w io.Writer, pages int, dir string) {
	fmt.Fprintf(w, "%s✓ Exported %d pages to %s%s\n", Green, pages, dir, Reset)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
