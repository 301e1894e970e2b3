package render

import (
	"github.com/fatih/color"

	"github.com/kpcyrd/sniffglue/internal/centrifuge"
)

// noiseColor maps a packet's noise level onto a terminal color: the more
// interesting the packet, the brighter it stands out.
func noiseColor(n centrifuge.NoiseLevel) *color.Color {
	switch n {
	case centrifuge.Zero:
		return color.New(color.FgGreen, color.Bold)
	case centrifuge.One:
		return color.New(color.FgCyan)
	case centrifuge.Two:
		return color.New(color.FgYellow)
	case centrifuge.AlmostMaximum:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgRed, color.Faint)
	}
}

func colorize(c *color.Color, s string) string {
	return c.Sprint(s)
}
