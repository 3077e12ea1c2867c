package cmd

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// palette colors CLI output. With --no-color or a non-terminal writer
// every style renders as plain text.
type palette struct {
	out *termenv.Output
}

func newPalette() palette {
	if noColor || !isTerminal(stdout) {
		return palette{out: termenv.NewOutput(stdout, termenv.WithProfile(termenv.Ascii))}
	}
	return palette{out: termenv.NewOutput(stdout)}
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p palette) block(s string) string {
	return p.out.String(s).Foreground(termenv.ANSIBlue).Bold().String()
}

func (p palette) leaf(s string) string {
	return p.out.String(s).Foreground(termenv.ANSIGreen).String()
}

func (p palette) dim(s string) string {
	return p.out.String(s).Faint().String()
}

func (p palette) warn(s string) string {
	return p.out.String(s).Foreground(termenv.ANSIYellow).String()
}

// traceLine colors one line of print pass output, keeping its indent.
func (p palette) traceLine(line string) string {
	body := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(body)]
	switch {
	case body == "}":
		return indent + p.dim(body)
	case strings.HasSuffix(body, " {"):
		return indent + p.block(strings.TrimSuffix(body, " {")) + " {"
	default:
		return indent + p.leaf(body)
	}
}
