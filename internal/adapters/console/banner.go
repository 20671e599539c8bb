package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner with an ocean gradient.
func PrintBanner(out io.Writer) {
	p := termenv.ColorProfile()
	rows := []struct {
		text  string
		color string
	}{
		{" _____                            _ ", "#2dd4bf"},
		{"|_   _| _ __   __ _ __   __  ___ | |", "#22d3ee"},
		{"  | |  | '__| / _` |\\ \\ / / / _ \\| |", "#38bdf8"},
		{"  | |  | |   | (_| | \\ V / |  __/| |", "#60a5fa"},
		{"  |_|  |_|    \\__,_|  \\_/   \\___||_|", "#818cf8"},
	}
	fmt.Fprintln(out)
	for _, r := range rows {
		fmt.Fprintln(out, termenv.String(r.text).Foreground(p.Color(r.color)))
	}
	fmt.Fprintln(out, termenv.String("        p l a n n e r").Foreground(p.Color("#64748b")))
	fmt.Fprintln(out)
}

func warnLine(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("! " + msg).Foreground(p.Color("#f59e0b")).String()
}

func okLine(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(msg).Foreground(p.Color("#34d399")).String()
}
