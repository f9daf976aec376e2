package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPATranscriptions_FiltersByType(t *testing.T) {
	t.Parallel()

	got, err := IPATranscriptions([]PronunciationResult{
		{Raw: "(hĕ-lō′)", RawType: "ahd-5"},
		{Raw: "/həˈloʊ/", RawType: "IPA"},
		{Raw: "HH AH0 L OW1", RawType: "arpabet"},
		{Raw: "/hɛˈləʊ/", RawType: "IPA"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/həˈloʊ/", "/hɛˈləʊ/"}, got)
}

func TestIPATranscriptions_NoneIPA(t *testing.T) {
	t.Parallel()

	_, err := IPATranscriptions([]PronunciationResult{{Raw: "HH AH0", RawType: "arpabet"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPhonetics))
}

func TestIPATranscriptions_Empty(t *testing.T) {
	t.Parallel()

	_, err := IPATranscriptions(nil)
	assert.ErrorIs(t, err, ErrNoPhonetics)
}

func TestRelationship_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RelationshipSynonym.IsValid())
	assert.True(t, RelationshipAntonym.IsValid())
	assert.False(t, Relationship("hypernym").IsValid())
	assert.Equal(t, "synonym", RelationshipSynonym.String())
}
