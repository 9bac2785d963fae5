package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasTenTopics(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 10)

	seen := make(map[string]bool)
	for _, tp := range cat {
		assert.NotEmpty(t, tp.ID)
		assert.NotEmpty(t, tp.Name)
		assert.False(t, seen[tp.ID], "duplicate topic id %q", tp.ID)
		seen[tp.ID] = true
		assert.False(t, tp.IsCustom(), "catalog topic %q reports custom", tp.ID)
	}
}

func TestByID(t *testing.T) {
	tp, ok := ByID("networking")
	require.True(t, ok)
	assert.Equal(t, "Computer Networks", tp.Name)

	_, ok = ByID("knitting")
	assert.False(t, ok)
}

func TestNewCustom(t *testing.T) {
	tests := []struct {
		name      string
		subtopics string
		wantOK    bool
		wantSubs  []string
	}{
		{"Compilers", "parsing, codegen,  , optimization", true, []string{"parsing", "codegen", "optimization"}},
		{"  Go Runtime  ", "", true, nil},
		{"", "anything", false, nil},
		{"   ", "gc", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, ok := NewCustom(tt.name, tt.subtopics)
			if !tt.wantOK {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.True(t, tp.IsCustom())
			assert.Equal(t, tt.wantSubs, tp.Subtopics)
		})
	}

	tp, _ := NewCustom("  Go Runtime  ", "")
	assert.Equal(t, "Go Runtime", tp.Name)
}

func TestPromptName(t *testing.T) {
	plain := Topic{ID: "algorithms", Name: "Algorithms"}
	assert.Equal(t, "Algorithms", plain.PromptName())

	custom := Topic{ID: CustomID, Name: "Compilers", Subtopics: []string{"parsing", "codegen"}}
	assert.Equal(t, "Compilers (focus areas: parsing, codegen)", custom.PromptName())
}
