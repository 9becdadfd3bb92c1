package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
)

// get moves one item from the current room into the inventory.
// Ambiguous queries are not remembered; the player re-enters a narrower one.
func (e *Engine) get(query string) error {
	if query == "" {
		return e.say("Sorry, you need to 'get' something.")
	}
	room, err := e.currentRoom()
	if err != nil {
		return err
	}

	m := command.ResolveItem(query, room.Items.Names())
	switch m.Status {
	case command.MatchResolved:
		if e.player.Inventory.Contains(m.Name) {
			return fmt.Errorf("item %q is both in room %d and carried", m.Name, room.ID)
		}
		if err := e.world.TakeItem(room.ID, m.Name); err != nil {
			return err
		}
		if !e.player.Inventory.Add(m.Name) {
			return fmt.Errorf("adding %q to inventory", m.Name)
		}
		e.logger.Info("item taken", zap.String("item", m.Name), zap.Int("room", room.ID))
		return e.say("You pick up the %s.", m.Name)
	case command.MatchAmbiguous:
		return e.say("Did you want to get %s?", strings.Join(m.Candidates, " or "))
	default:
		return e.say("There's no %s anywhere.", query)
	}
}

// drop moves one carried item into the current room and redisplays it.
func (e *Engine) drop(query string) error {
	if query == "" {
		return e.say("Sorry, you need to 'drop' something.")
	}
	room, err := e.currentRoom()
	if err != nil {
		return err
	}

	m := command.ResolveItem(query, e.player.Inventory.Names())
	switch m.Status {
	case command.MatchResolved:
		if err := e.world.PlaceItem(room.ID, m.Name); err != nil {
			return err
		}
		if !e.player.Inventory.Remove(m.Name) {
			return fmt.Errorf("removing %q from inventory", m.Name)
		}
		e.logger.Info("item dropped", zap.String("item", m.Name), zap.Int("room", room.ID))
		if err := e.say("You drop the %s.", m.Name); err != nil {
			return err
		}
		if err := e.out.WriteRoom(buildRoomView(room)); err != nil {
			return fmt.Errorf("writing room: %w", err)
		}
		return nil
	case command.MatchAmbiguous:
		return e.say("Did you want to drop %s?", strings.Join(m.Candidates, " or "))
	default:
		return e.say("You're not carrying a %s.", query)
	}
}

func (e *Engine) inventory() error {
	items := e.player.Inventory.Names()
	if len(items) == 0 {
		return e.say("You're not carrying anything.")
	}
	if err := e.say("Inventory:"); err != nil {
		return err
	}
	for _, item := range items {
		if err := e.say("  %s", item); err != nil {
			return err
		}
	}
	return nil
}
