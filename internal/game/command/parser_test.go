package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
	assert.True(t, result.Empty())
}

func TestParse_Blank(t *testing.T) {
	result := Parse(" \t  ")
	assert.True(t, result.Empty())
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("look")
	assert.Equal(t, "look", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
	assert.Equal(t, "look", result.Line())
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("GET Rusty KEY")
	assert.Equal(t, "get", result.Command)
	assert.Equal(t, []string{"rusty", "key"}, result.Args)
	assert.Equal(t, "rusty key", result.RawArgs)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  go   north   east  ")
	assert.Equal(t, "go", result.Command)
	assert.Equal(t, []string{"north", "east"}, result.Args)
	assert.Equal(t, "north east", result.RawArgs)
	assert.Equal(t, "go north east", result.Line())
}

func TestParse_DirectionAlias(t *testing.T) {
	result := Parse("n")
	assert.Equal(t, "n", result.Command)
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Equal(t, []string{"drop", "the", "lamp"}, Tokenize("Drop THE lamp"))
}

func TestPropertyParseAlwaysLowercases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[A-Za-z ]{0,40}`).Draw(t, "line")
		result := Parse(line)
		if result.Line() != strings.ToLower(result.Line()) {
			t.Fatalf("parse of %q produced uppercase tokens %q", line, result.Line())
		}
	})
}

func TestPropertyTokenizePreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 6).Draw(t, "words")
		line := strings.Join(words, "   ")
		tokens := Tokenize(line)
		if len(tokens) != len(words) {
			t.Fatalf("expected %d tokens, got %v", len(words), tokens)
		}
		for i := range words {
			if tokens[i] != words[i] {
				t.Fatalf("token %d: expected %q, got %q", i, words[i], tokens[i])
			}
		}
	})
}

func TestPropertyParseNonEmptyInputHasCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "word")
		result := Parse(word)
		if result.Command == "" {
			t.Fatalf("non-empty input %q produced empty command", word)
		}
	})
}
