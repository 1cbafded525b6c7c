package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether w is os.Stdout or os.Stderr on a terminal.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || (f != os.Stdout && f != os.Stderr) {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the colors shared by the printers.
type palette struct {
	title  *color.Color
	label  *color.Color
	value  *color.Color
	accent *color.Color
	warn   *color.Color
	dim    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:  color.New(color.Bold, color.FgMagenta),
		label:  color.New(color.FgCyan),
		value:  color.New(color.Bold),
		accent: color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.title, p.label, p.value, p.accent, p.warn, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
