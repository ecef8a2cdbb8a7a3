package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/platform/markdown"
)

func TestRenderNoteKeepsFieldOrder(t *testing.T) {
	meta := struct {
		ID      string `yaml:"id"`
		Subject string `yaml:"subject"`
		Minutes int    `yaml:"duration_minutes"`
	}{ID: "s-1", Subject: "Math", Minutes: 25}

	got, err := markdown.RenderNote(meta, "# Math\n")
	require.NoError(t, err)
	assert.Equal(t, "---\nid: s-1\nsubject: Math\nduration_minutes: 25\n---\n\n# Math\n", got)
}

func TestRenderNoteWithoutBody(t *testing.T) {
	got, err := markdown.RenderNote(map[string]int{"a": 1}, "")
	require.NoError(t, err)
	assert.Equal(t, "---\na: 1\n---\n", got)
}
