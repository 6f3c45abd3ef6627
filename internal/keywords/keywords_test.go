package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMainstream(t *testing.T) {
	tests := []struct {
		name  string
		skill string
		want  bool
	}{
		{name: "exact keyword", skill: "python", want: true},
		{name: "mixed case", skill: "PyThOn", want: true},
		{name: "keyword inside phrase", skill: "Amazon Web Services (AWS)", want: true},
		{name: "punctuation keyword", skill: "C++ programming", want: true},
		{name: "multi word keyword", skill: "Applied Machine Learning", want: true},
		{name: "node dot js", skill: "Node.js", want: true},
		{name: "unknown skill", skill: "COBOL", want: false},
		{name: "fortran", skill: "Fortran", want: false},
		{name: "empty string", skill: "", want: false},
		{name: "unicode only", skill: "日本語", want: false},
		{name: "django substring", skill: "Djangoal", want: true},
		{name: "go substring", skill: "mango", want: true},
		{name: "pl slash i", skill: "PL/I", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMainstream(tt.skill))
		})
	}
}

func TestIsMainstream_CaseInsensitive(t *testing.T) {
	skills := []string{"Python", "cobol", "Microsoft Excel", "PL/I", "Mango", "GitLab CI", "ábc"}
	for _, s := range skills {
		got := IsMainstream(s)
		assert.Equal(t, got, IsMainstream(strings.ToUpper(s)), s)
		assert.Equal(t, got, IsMainstream(strings.ToLower(s)), s)
		// no hidden state between calls
		assert.Equal(t, got, IsMainstream(s), s)
	}
}

func TestMatch_ReturnsFirstKeywordInTableOrder(t *testing.T) {
	key, ok := Match("JavaScript")
	require.True(t, ok)
	// "java" precedes "javascript" in the table
	assert.Equal(t, "java", key)

	key, ok = Match("Microsoft Excel")
	require.True(t, ok)
	assert.Equal(t, "excel", key)

	key, ok = Match("Lotus Notes")
	assert.False(t, ok)
	assert.Empty(t, key)
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)
	assert.Equal(t, "python", first[0])
	assert.Equal(t, "mongodb", first[len(first)-1])

	first[0] = "cobol"
	assert.Equal(t, "python", All()[0])
	assert.False(t, IsMainstream("cobol"))
}

func TestAll_Lowercase(t *testing.T) {
	for _, key := range All() {
		assert.Equal(t, strings.ToLower(key), key)
		assert.NotEmpty(t, key)
	}
}
