package presenter

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles maps each output role to a terminal style.
type styles struct {
	colour bool

	index        lipgloss.Style
	partOfSpeech lipgloss.Style
	example      lipgloss.Style
	marker       lipgloss.Style
	phonetics    lipgloss.Style
	synonyms     lipgloss.Style
	antonyms     lipgloss.Style
	syllables    lipgloss.Style
	stressed     lipgloss.Style
	source       lipgloss.Style
	heading      lipgloss.Style
}

func newStyles(colour bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return styles{
		colour:       colour,
		index:        base.Foreground(lipgloss.Color("6")).Bold(true),
		partOfSpeech: base.Foreground(lipgloss.Color("13")),
		example:      base.Foreground(lipgloss.Color("2")).Italic(true),
		marker:       base.Foreground(lipgloss.Color("1")).Italic(true),
		phonetics:    base.Foreground(lipgloss.Color("11")),
		synonyms:     base.Foreground(lipgloss.Color("6")),
		antonyms:     base.Foreground(lipgloss.Color("5")),
		syllables:    base.Bold(true),
		stressed:     base.Bold(true).Underline(true),
		source:       base.Faint(true),
		heading:      base.Bold(true).Underline(true),
	}
}

// paint applies style to text line by line. With colour off the text is
// returned untouched: lipgloss would otherwise pad multi-line blocks.
func (st styles) paint(style lipgloss.Style, text string) string {
	if !st.colour || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
