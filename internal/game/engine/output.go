package engine

import "github.com/cory-johannsen/adventure/internal/game/world"

// RoomView is the player-visible snapshot of a room.
type RoomView struct {
	Name        string
	Description string
	// Items lists the room contents in display order.
	Items []string
	// Exits lists the exit names in declaration order.
	Exits []string
}

// Output receives everything the engine tells the player.
type Output interface {
	// WriteLine emits one line of text.
	WriteLine(text string) error
	// WriteRoom displays a room.
	WriteRoom(view RoomView) error
}

// buildRoomView snapshots room so later mutations do not alias the view.
func buildRoomView(room *world.Room) RoomView {
	return RoomView{
		Name:        room.Name,
		Description: room.Description,
		Items:       room.Items.Names(),
		Exits:       room.ExitNames(),
	}
}
