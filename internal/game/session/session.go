// Package session holds the mutable state of one player's game.
package session

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// Status is the lifecycle state of a session.
type Status int

// Session states. Every state but Playing is terminal.
const (
	Playing Status = iota
	Quit
	Won
	Lost
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Quit:
		return "quit"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the session.
func (s Status) Terminal() bool {
	return s != Playing
}

// Player tracks a player's position, inventory, and pending choice.
// It is owned by a single turn loop and is not safe for concurrent use.
type Player struct {
	// ID identifies the session in logs.
	ID string
	// RoomID is the index of the room the player occupies.
	RoomID int
	// Inventory holds the items the player carries, in pickup order.
	Inventory *inventory.Set
	// Status is Playing until the player quits, wins, or loses.
	Status Status
	// Turns counts processed input lines.
	Turns int
	// Moves counts successful room changes.
	Moves int

	pending Disambiguation
}

// New creates a Player standing in startRoom with nothing pending.
//
// Postcondition: Returns a Playing session with an empty inventory.
func New(startRoom int) *Player {
	return &Player{
		ID:        uuid.New().String(),
		RoomID:    startRoom,
		Inventory: inventory.NewSet(),
		pending:   Idle{},
	}
}

// MoveTo places the player in roomID.
//
// Postcondition: Returns the room the player left.
func (p *Player) MoveTo(roomID int) int {
	old := p.RoomID
	p.RoomID = roomID
	p.Moves++
	return old
}

// Pending returns the current disambiguation state without consuming it.
func (p *Player) Pending() Disambiguation {
	if p.pending == nil {
		return Idle{}
	}
	return p.pending
}

// AwaitDirection records an ambiguous direction query for the next turn.
//
// Precondition: candidates holds at least two exit names.
func (p *Player) AwaitDirection(query string, candidates []string) {
	cs := make([]string, len(candidates))
	copy(cs, candidates)
	p.pending = AwaitingDirectionChoice{Candidates: cs, Query: query}
}

// TakePending returns the pending state and resets it to Idle.
//
// Postcondition: Pending() is Idle.
func (p *Player) TakePending() Disambiguation {
	d := p.Pending()
	p.pending = Idle{}
	return d
}

// End moves the session into a terminal status.
func (p *Player) End(s Status) {
	p.Status = s
	p.pending = Idle{}
}
