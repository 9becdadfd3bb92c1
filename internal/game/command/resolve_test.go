package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestResolveDirection_Exact(t *testing.T) {
	m := ResolveDirection("north", []string{"north", "northeast"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "north", m.Name)
}

func TestResolveDirection_PrefixAmbiguous(t *testing.T) {
	m := ResolveDirection("n", []string{"north", "south", "northeast"})
	assert.Equal(t, MatchAmbiguous, m.Status)
	assert.Equal(t, []string{"north", "northeast"}, m.Candidates)
	assert.Empty(t, m.Name)
}

func TestResolveDirection_UniquePrefix(t *testing.T) {
	m := ResolveDirection("s", []string{"north", "south"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "south", m.Name)

	m = ResolveDirection("stai", []string{"stairs", "south"})
	assert.Equal(t, "stairs", m.Name)
}

func TestResolveDirection_CompoundBeatsPrefix(t *testing.T) {
	m := ResolveDirection("ne", []string{"northeast", "north"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "northeast", m.Name)
}

func TestResolveDirection_CompoundWithoutExpansionFallsThrough(t *testing.T) {
	m := ResolveDirection("ne", []string{"north", "nether"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "nether", m.Name)

	m = ResolveDirection("sw", []string{"north", "south"})
	assert.Equal(t, MatchNotFound, m.Status)
}

func TestResolveDirection_ExactBeatsPrefix(t *testing.T) {
	m := ResolveDirection("up", []string{"upstairs", "up"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "up", m.Name)
}

func TestResolveDirection_NotFound(t *testing.T) {
	assert.Equal(t, MatchNotFound, ResolveDirection("west", []string{"north"}).Status)
	assert.Equal(t, MatchNotFound, ResolveDirection("", []string{"north"}).Status)
	assert.Equal(t, MatchNotFound, ResolveDirection("north", nil).Status)
}

func TestResolveItem_Substring(t *testing.T) {
	m := ResolveItem("key", []string{"lamp", "rusty key"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "rusty key", m.Name)
}

func TestResolveItem_Ambiguous(t *testing.T) {
	m := ResolveItem("key", []string{"rusty key", "lamp", "golden key"})
	assert.Equal(t, MatchAmbiguous, m.Status)
	assert.Equal(t, []string{"rusty key", "golden key"}, m.Candidates)
}

func TestResolveItem_ExactBeatsSubstring(t *testing.T) {
	m := ResolveItem("key", []string{"key ring", "key"})
	assert.Equal(t, MatchResolved, m.Status)
	assert.Equal(t, "key", m.Name)
}

func TestResolveItem_NotFound(t *testing.T) {
	assert.Equal(t, MatchNotFound, ResolveItem("sword", []string{"lamp"}).Status)
	assert.Equal(t, MatchNotFound, ResolveItem("", []string{"lamp"}).Status)
}

func TestPropertyResolvedDirectionIsAnExit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pool := []string{"north", "northeast", "northwest", "south", "southeast", "east", "west", "up", "down", "stairs"}
		exits := rapid.SliceOfNDistinct(rapid.SampledFrom(pool), 0, len(pool), rapid.ID[string]).Draw(t, "exits")
		query := rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "query")

		m := ResolveDirection(query, exits)
		switch m.Status {
		case MatchResolved:
			if !containsName(exits, m.Name) {
				t.Fatalf("resolved %q to %q which is not an exit of %v", query, m.Name, exits)
			}
		case MatchAmbiguous:
			if len(m.Candidates) < 2 {
				t.Fatalf("ambiguous result with %d candidates", len(m.Candidates))
			}
			for _, c := range m.Candidates {
				if !strings.HasPrefix(c, query) {
					t.Fatalf("candidate %q does not start with %q", c, query)
				}
			}
		case MatchNotFound:
			for _, e := range exits {
				if strings.HasPrefix(e, query) {
					t.Fatalf("query %q matched nothing but exit %q has it as prefix", query, e)
				}
			}
		}
	})
}

func TestPropertyItemMatchContainsQuery(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}( [a-z]{1,6})?`), 0, 6, rapid.ID[string]).Draw(t, "items")
		query := rapid.StringMatching(`[a-z]{1,3}`).Draw(t, "query")

		m := ResolveItem(query, items)
		switch m.Status {
		case MatchResolved:
			if !strings.Contains(m.Name, query) {
				t.Fatalf("resolved %q to %q", query, m.Name)
			}
		case MatchAmbiguous:
			for _, c := range m.Candidates {
				if !strings.Contains(c, query) {
					t.Fatalf("candidate %q does not contain %q", c, query)
				}
			}
		}
	})
}
