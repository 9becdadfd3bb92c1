package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), 7)
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("inventory")
	assert.True(t, ok)
	assert.Equal(t, "inventory", cmd.Name)
	assert.Equal(t, VerbInventory, cmd.Verb)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	for _, alias := range []string{"in", "i", "inv"} {
		cmd, ok := r.Resolve(alias)
		require.True(t, ok, "alias %q not found", alias)
		assert.Equal(t, "inventory", cmd.Name)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("xyzzy")
	assert.False(t, ok)
	assert.Equal(t, VerbUnknown, r.Verb("xyzzy"))
}

func TestResolve_NoPrefixMatching(t *testing.T) {
	r := DefaultRegistry()

	for _, input := range []string{"inven", "loo", "qui", "he", "dr"} {
		assert.Equal(t, VerbUnknown, r.Verb(input), "input %q should not resolve", input)
	}
}

func TestVerb_AllBuiltins(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input string
		verb  Verb
	}{
		{"go", VerbGo},
		{"walk", VerbGo},
		{"look", VerbLook},
		{"l", VerbLook},
		{"get", VerbGet},
		{"take", VerbGet},
		{"drop", VerbDrop},
		{"inventory", VerbInventory},
		{"i", VerbInventory},
		{"help", VerbHelp},
		{"?", VerbHelp},
		{"quit", VerbQuit},
		{"exit", VerbQuit},
		{"q", VerbQuit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.verb, r.Verb(tt.input), "input %q wrong verb", tt.input)
	}
}

func TestVerb_String(t *testing.T) {
	assert.Equal(t, "go", VerbGo.String())
	assert.Equal(t, "inventory", VerbInventory.String())
	assert.Equal(t, "unknown", VerbUnknown.String())
	assert.Equal(t, "unknown", Verb(99).String())
}

func TestCommands_HelpOrder(t *testing.T) {
	r := DefaultRegistry()
	var names []string
	for _, cmd := range r.Commands() {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"go", "get", "drop", "look", "inventory", "quit", "help"}, names)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "test", Verb: VerbLook},
		{Name: "test", Verb: VerbHelp},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "test1", Aliases: []string{"t"}, Verb: VerbLook},
		{Name: "test2", Aliases: []string{"t"}, Verb: VerbHelp},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestNewRegistry_AliasShadowsName(t *testing.T) {
	cmds := []Command{
		{Name: "look", Verb: VerbLook},
		{Name: "peek", Aliases: []string{"look"}, Verb: VerbLook},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		// Canonical name should resolve
		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q resolved to %q", cmd.Name, resolved.Name)
		}

		// All aliases should resolve to same command
		for _, alias := range cmd.Aliases {
			if r.Verb(alias) != cmd.Verb {
				t.Fatalf("alias %q resolved to %v, expected %v", alias, r.Verb(alias), cmd.Verb)
			}
		}
	})
}
