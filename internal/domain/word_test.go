package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDefinition_HasText(t *testing.T) {
	t.Parallel()

	assert.True(t, Definition{Text: strPtr("a greeting")}.HasText())
	assert.False(t, Definition{Text: strPtr("")}.HasText())
	assert.False(t, Definition{}.HasText())
}

func TestDefinition_TopExample(t *testing.T) {
	t.Parallel()

	def := Definition{Examples: []Example{{Text: "first"}, {Text: "second"}}}
	ex, ok := def.TopExample()
	assert.True(t, ok)
	assert.Equal(t, "first", ex)

	_, ok = Definition{}.TopExample()
	assert.False(t, ok)
}

func TestSyllable_IsStressed(t *testing.T) {
	t.Parallel()

	assert.True(t, Syllable{Text: "lo", Type: strPtr("stress")}.IsStressed())
	assert.False(t, Syllable{Text: "hel"}.IsStressed())
}
