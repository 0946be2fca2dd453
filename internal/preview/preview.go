// Package preview renders colour swatches for the terminal.
package preview

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// SwatchWidth is the cell width of one labelled swatch.
const SwatchWidth = 26

// TerminalWidth returns the column count of f, or DefaultWidth when f is
// not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Swatch renders label on a block of argb, with black or white text
// whichever contrasts more.
func Swatch(label string, argb uint32, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colour.ToHex(argb))).
		Foreground(lipgloss.Color(colour.ToHex(colour.ContrastColor(argb)))).
		Width(width).
		MaxWidth(width).
		Padding(0, 1).
		Render(label)
}

// Grid lays swatches out in as many columns as fit in width.
func Grid(cells []string, width int) string {
	cols := max(1, width/SwatchWidth)

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Scheme renders every role of s with its hex value.
func Scheme(s *material.DynamicScheme, width int) string {
	roles := s.Roles()
	cells := make([]string, len(roles))
	for i, rv := range roles {
		cells[i] = Swatch(string(rv.Key)+" "+colour.ToHex(rv.ARGB), rv.ARGB, SwatchWidth)
	}

	title := lipgloss.NewStyle().Bold(true).Render(schemeTitle(s))
	return title + "\n" + Grid(cells, width)
}

func schemeTitle(s *material.DynamicScheme) string {
	mode := "light"
	if s.IsDark() {
		mode = "dark"
	}
	return s.Variant().Label() + " · " + mode + " · " + colour.ToHex(s.SourceColor())
}

// Tokens renders a token map in key order.
func Tokens(cs tokens.ColorScheme, width int) string {
	keys := cs.Keys()
	cells := make([]string, len(keys))
	for i, k := range keys {
		cells[i] = Swatch(k+" "+colour.ToHex(cs[k]), cs[k], SwatchWidth)
	}
	return Grid(cells, width)
}

// Palette renders one strip of tones, each cell labelled with its tone.
func Palette(name string, p *material.TonalPalette, tones []float64, width int) string {
	cell := max(4, (width-len(name)-1)/max(1, len(tones)))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Width(len(name) + 1).Render(name))
	for _, tone := range tones {
		argb := p.Tone(tone)
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(colour.ToHex(argb))).
			Foreground(lipgloss.Color(colour.ToHex(colour.ContrastColor(argb)))).
			Width(cell).
			MaxWidth(cell).
			Align(lipgloss.Center).
			Render(strconv.FormatFloat(tone, 'f', -1, 64)))
	}
	return b.String()
}
