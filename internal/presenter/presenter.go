// Package presenter turns a WordInfo into terminal lines or JSON.
package presenter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/define/internal/domain"
)

// Markers printed in place of missing data.
const (
	NoDefinitions  = "[No definitions available]"
	NoExample      = "[No example]"
	NoPhonetics    = "[No phonetics available]"
	NoSynonyms     = "[No synonyms available]"
	NoAntonyms     = "[No antonyms available]"
	NoSyllables    = "[No syllables available]"
	syllableJoiner = "·"
)

// Options selects what Render prints.
type Options struct {
	// Max caps the number of definitions; zero or negative means all.
	Max           int
	ShowExamples  bool
	ShowPhonetics bool
	ShowSynonyms  bool
	ShowAntonyms  bool
	ShowSyllables bool
	// ShowSources adds the source dictionary under each definition that
	// names one.
	ShowSources bool
	NoTypes     bool
	Colour      bool
	// Verbose turns on every Show* option.
	Verbose bool
	// Heading prints the word itself first, for lookups where the user did
	// not type it.
	Heading bool
}

func (o Options) normalized() Options {
	if o.Verbose {
		o.ShowExamples = true
		o.ShowPhonetics = true
		o.ShowSynonyms = true
		o.ShowAntonyms = true
		o.ShowSyllables = true
		o.ShowSources = true
	}
	return o
}

// Render formats info as output lines. Colour only changes styling, never
// which lines are produced.
func Render(info *domain.WordInfo, opts Options) []string {
	opts = opts.normalized()
	st := newStyles(opts.Colour)

	var lines []string

	if opts.Heading {
		lines = append(lines, st.paint(st.heading, info.Word), "")
	}

	if opts.ShowPhonetics {
		if len(info.Pronunciations) == 0 {
			lines = append(lines, st.paint(st.marker, NoPhonetics))
		} else {
			lines = append(lines, st.paint(st.phonetics, strings.Join(info.Pronunciations, ", ")))
		}
		lines = append(lines, "")
	}

	lines = append(lines, renderDefinitions(info.Definitions, opts, st)...)

	var tail []string
	if opts.ShowSynonyms {
		tail = append(tail, renderList("Synonyms", info.Synonyms, NoSynonyms, st.synonyms, st))
	}
	if opts.ShowAntonyms {
		tail = append(tail, renderList("Antonyms", info.Antonyms, NoAntonyms, st.antonyms, st))
	}
	if opts.ShowSyllables {
		tail = append(tail, renderSyllables(info.Syllables, st))
	}
	if len(tail) > 0 {
		lines = append(lines, "")
		lines = append(lines, tail...)
	}

	return lines
}

// renderDefinitions drops definitions without text, applies Max, then
// numbers from 1.
func renderDefinitions(defs []domain.Definition, opts Options, st styles) []string {
	shown := make([]domain.Definition, 0, len(defs))
	for _, d := range defs {
		if d.HasText() {
			shown = append(shown, d)
		}
	}
	if opts.Max > 0 && len(shown) > opts.Max {
		shown = shown[:opts.Max]
	}

	if len(shown) == 0 {
		return []string{st.paint(st.marker, NoDefinitions)}
	}

	lines := make([]string, 0, len(shown)*2)
	for i, d := range shown {
		index := st.paint(st.index, fmt.Sprintf("%d.", i+1))
		if opts.NoTypes {
			lines = append(lines, fmt.Sprintf("%s %s", index, *d.Text))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s - %s", index, st.paint(st.partOfSpeech, d.PartOfSpeech), *d.Text))
		}

		if opts.ShowExamples {
			if ex, ok := d.TopExample(); ok {
				lines = append(lines, st.paint(st.example, "e.g: "+ex))
			} else {
				lines = append(lines, st.paint(st.marker, NoExample))
			}
		}
		if opts.ShowSources && d.SourceDictionary != nil {
			lines = append(lines, st.paint(st.source, "Source: "+d.SourceDictionary.DisplayName()))
		}
	}
	return lines
}

func renderList(label string, words []string, marker string, style lipgloss.Style, st styles) string {
	if len(words) == 0 {
		return st.paint(st.marker, marker)
	}
	return st.paint(style, label+": "+strings.Join(words, ", "))
}

func renderSyllables(sylls []domain.Syllable, st styles) string {
	if len(sylls) == 0 {
		return st.paint(st.marker, NoSyllables)
	}
	parts := make([]string, 0, len(sylls))
	for _, s := range sylls {
		style := st.syllables
		if s.IsStressed() {
			style = st.stressed
		}
		parts = append(parts, st.paint(style, s.Text))
	}
	return "Syllables: " + strings.Join(parts, syllableJoiner)
}

// RenderJSON returns info as one pretty-printed JSON document.
func RenderJSON(info *domain.WordInfo) ([]byte, error) {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal word info: %w", err)
	}
	return data, nil
}
