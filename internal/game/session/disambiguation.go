package session

import "strings"

// Disambiguation is the single-turn memory of an unresolved query.
// It is either Idle or AwaitingDirectionChoice.
type Disambiguation interface {
	isDisambiguation()
}

// Idle means no choice is pending.
type Idle struct{}

func (Idle) isDisambiguation() {}

// AwaitingDirectionChoice holds the exits a direction query matched.
type AwaitingDirectionChoice struct {
	// Candidates are the matching exit names in room order.
	Candidates []string
	// Query is the direction text the player typed.
	Query string
}

func (AwaitingDirectionChoice) isDisambiguation() {}

// Choose returns the candidate equal to input, if any.
func (a AwaitingDirectionChoice) Choose(input string) (string, bool) {
	for _, c := range a.Candidates {
		if c == input {
			return c, true
		}
	}
	return "", false
}

// Options renders the candidates as "a or b or c".
func (a AwaitingDirectionChoice) Options() string {
	return strings.Join(a.Candidates, " or ")
}
