package command

import (
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// MatchStatus is the outcome of resolving a query against candidate names.
type MatchStatus int

const (
	// MatchNotFound means no candidate matched.
	MatchNotFound MatchStatus = iota
	// MatchResolved means exactly one canonical name was selected.
	MatchResolved
	// MatchAmbiguous means several candidates matched and the player must choose.
	MatchAmbiguous
)

// Match is the result of a direction or item resolution.
type Match struct {
	Status MatchStatus
	// Name is the canonical name when Status is MatchResolved.
	Name string
	// Candidates lists every match, in source order, when Status is MatchAmbiguous.
	Candidates []string
}

func resolved(name string) Match {
	return Match{Status: MatchResolved, Name: name}
}

// ResolveDirection maps a direction query to one of the room's exit names.
// The first rule that applies wins:
//  1. a compound abbreviation ("ne") whose expansion is an exit;
//  2. an exact exit name;
//  3. a unique exit that starts with the query.
//
// Several prefix matches yield MatchAmbiguous with the exits in room order.
//
// Postcondition: An empty query never matches.
func ResolveDirection(query string, exits []string) Match {
	if query == "" {
		return Match{Status: MatchNotFound}
	}
	if expansion, ok := world.CompoundAbbreviations[query]; ok && containsName(exits, expansion) {
		return resolved(expansion)
	}
	if containsName(exits, query) {
		return resolved(query)
	}

	var matches []string
	for _, e := range exits {
		if strings.HasPrefix(e, query) {
			matches = append(matches, e)
		}
	}
	return fromMatches(matches)
}

// ResolveItem maps an item query to one of the given item names. An exact
// name wins; otherwise every item containing the query as a substring matches.
//
// Postcondition: An empty query never matches.
func ResolveItem(query string, items []string) Match {
	if query == "" {
		return Match{Status: MatchNotFound}
	}
	if containsName(items, query) {
		return resolved(query)
	}

	var matches []string
	for _, item := range items {
		if strings.Contains(item, query) {
			matches = append(matches, item)
		}
	}
	return fromMatches(matches)
}

func fromMatches(matches []string) Match {
	switch len(matches) {
	case 0:
		return Match{Status: MatchNotFound}
	case 1:
		return resolved(matches[0])
	default:
		return Match{Status: MatchAmbiguous, Candidates: matches}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
