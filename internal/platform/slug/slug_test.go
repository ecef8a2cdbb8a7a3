package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"studytracker/internal/platform/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Organic Chemistry", "organic-chemistry"},
		{"  Matemática Básica ", "matematica-basica"},
		{"C++ / Go", "c-go"},
		{"???", "untitled"},
		{"", "untitled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.Make(tt.in), tt.in)
	}
}

func TestMakeCapsLength(t *testing.T) {
	got := slug.Make(strings.Repeat("history ", 20))
	assert.LessOrEqual(t, len(got), slug.MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}
