// Package world provides the game world model: rooms, exits, room contents, and locks.
package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// CompoundAbbreviations maps the two-letter compass abbreviations to the
// directions they expand to.
var CompoundAbbreviations = map[string]string{
	"nw": "northwest",
	"ne": "northeast",
	"sw": "southwest",
	"se": "southeast",
}

// Exit represents a passage from one room to another.
type Exit struct {
	// Name is the canonical, lowercased exit name (e.g. "north", "stairs").
	Name string
	// Target is the index of the destination room.
	Target int
	// Requires lists the items the player must hold to pass. Empty means unlocked.
	Requires []string
}

// Locked reports whether passing the exit requires items.
func (e Exit) Locked() bool {
	return len(e.Requires) > 0
}

// Room represents a location in the game world.
type Room struct {
	// ID is the room's index in the world's room list.
	ID int
	// Name is the short display name of the room.
	Name string
	// Description is the room description shown to players.
	Description string
	// Items holds the items lying in the room, in display order.
	Items *inventory.Set
	// Exits lists all passages leading out of this room, in declaration order.
	Exits []Exit
	// WinningItems, when non-empty, ends the game on entry: victory if the
	// player holds every listed item, defeat otherwise.
	WinningItems []string
}

// ExitNames returns the names of the room's exits in declaration order.
func (r *Room) ExitNames() []string {
	names := make([]string, 0, len(r.Exits))
	for _, e := range r.Exits {
		names = append(names, e.Name)
	}
	return names
}

// ExitNamed returns the exit with the given canonical name, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitNamed(name string) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Name == name {
			return e, true
		}
	}
	return Exit{}, false
}

// IsGoal reports whether entering the room ends the game.
func (r *Room) IsGoal() bool {
	return len(r.WinningItems) > 0
}

// World is the ordered room list loaded once per session.
// Its structure is fixed; only room contents change.
type World struct {
	rooms      []*Room
	directions map[string]bool
}

// NewWorld builds a World from rooms and validates its invariants.
//
// Precondition: rooms[i].ID must equal i.
// Postcondition: Returns a World or an error describing the first violation.
func NewWorld(rooms []*Room) (*World, error) {
	w := &World{rooms: rooms}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	for _, r := range rooms {
		if r.Items == nil {
			r.Items = inventory.NewSet()
		}
	}
	w.directions = buildDirectionTokens(rooms)
	return w, nil
}

// Validate checks world invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (w *World) Validate() error {
	if len(w.rooms) == 0 {
		return fmt.Errorf("world must contain at least one room")
	}
	// Item names are unique across the world so every item has exactly one place.
	itemRoom := make(map[string]int)
	for i, room := range w.rooms {
		if room == nil {
			return fmt.Errorf("room %d is nil", i)
		}
		if room.ID != i {
			return fmt.Errorf("room %d: id %d does not match its position", i, room.ID)
		}
		if room.Name == "" {
			return fmt.Errorf("room %d: name must not be empty", i)
		}
		if room.Items != nil {
			for _, item := range room.Items.Names() {
				if first, ok := itemRoom[item]; ok {
					return fmt.Errorf("room %d (%s): item %q is already in room %d", i, room.Name, item, first)
				}
				itemRoom[item] = i
			}
		}
		seen := make(map[string]bool, len(room.Exits))
		for _, exit := range room.Exits {
			if exit.Name == "" {
				return fmt.Errorf("room %d (%s): exit name must not be empty", i, room.Name)
			}
			if seen[exit.Name] {
				return fmt.Errorf("room %d (%s): duplicate exit %q", i, room.Name, exit.Name)
			}
			seen[exit.Name] = true
			if exit.Target < 0 || exit.Target >= len(w.rooms) {
				return fmt.Errorf("room %d (%s): exit %q targets unknown room %d", i, room.Name, exit.Name, exit.Target)
			}
		}
	}
	return nil
}

// buildDirectionTokens collects every token that names a direction somewhere
// in the world: each exit name, its first word, its first letter, and the
// compound abbreviations.
func buildDirectionTokens(rooms []*Room) map[string]bool {
	tokens := make(map[string]bool)
	for abbr := range CompoundAbbreviations {
		tokens[abbr] = true
	}
	for _, r := range rooms {
		for _, e := range r.Exits {
			tokens[e.Name] = true
			if fields := strings.Fields(e.Name); len(fields) > 0 {
				tokens[fields[0]] = true
			}
			tokens[e.Name[:1]] = true
		}
	}
	return tokens
}

// IsDirectionToken reports whether token names or abbreviates an exit
// anywhere in the world.
func (w *World) IsDirectionToken(token string) bool {
	return w.directions[token]
}

// Room returns the room with the given index.
//
// Postcondition: Returns (room, true) if id is in range, or (nil, false) otherwise.
func (w *World) Room(id int) (*Room, bool) {
	if id < 0 || id >= len(w.rooms) {
		return nil, false
	}
	return w.rooms[id], true
}

// StartRoom returns the first room, where every session begins.
func (w *World) StartRoom() *Room {
	return w.rooms[0]
}

// RoomCount returns the number of rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// ItemCount returns the number of items lying in rooms.
func (w *World) ItemCount() int {
	n := 0
	for _, r := range w.rooms {
		n += r.Items.Len()
	}
	return n
}

// Navigate resolves movement from a room through the named exit.
// Lock requirements are not checked here; callers inspect Exit.Requires.
//
// Precondition: fromID must be a valid room index.
// Postcondition: Returns the exit and destination room, or an error if either is missing.
func (w *World) Navigate(fromID int, exitName string) (Exit, *Room, error) {
	from, ok := w.Room(fromID)
	if !ok {
		return Exit{}, nil, fmt.Errorf("room %d not found", fromID)
	}
	exit, ok := from.ExitNamed(exitName)
	if !ok {
		return Exit{}, nil, fmt.Errorf("no exit %q from room %d", exitName, fromID)
	}
	target, ok := w.Room(exit.Target)
	if !ok {
		return Exit{}, nil, fmt.Errorf("exit %q from room %d targets unknown room %d", exitName, fromID, exit.Target)
	}
	return exit, target, nil
}

// TakeItem removes item from the room's contents.
//
// Postcondition: Returns an error and leaves the room unchanged if the item is not there.
func (w *World) TakeItem(roomID int, item string) error {
	room, ok := w.Room(roomID)
	if !ok {
		return fmt.Errorf("room %d not found", roomID)
	}
	if !room.Items.Remove(item) {
		return fmt.Errorf("item %q is not in room %d", item, roomID)
	}
	return nil
}

// PlaceItem adds item to the room's contents.
//
// Postcondition: item is the last entry of the room's contents.
func (w *World) PlaceItem(roomID int, item string) error {
	room, ok := w.Room(roomID)
	if !ok {
		return fmt.Errorf("room %d not found", roomID)
	}
	if !room.Items.Add(item) {
		return fmt.Errorf("item %q is already in room %d", item, roomID)
	}
	return nil
}
