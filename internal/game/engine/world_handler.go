package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/session"
)

const (
	msgVictory = "Congratulations! You have everything you need. You win!"
	msgDefeat  = "You don't have everything you need. Game over!"
)

// move resolves a direction query against the current room and, when it
// names exactly one exit, walks through it.
func (e *Engine) move(query string) error {
	if query == "" {
		return e.say("Sorry, you need to 'go' somewhere.")
	}
	room, err := e.currentRoom()
	if err != nil {
		return err
	}

	m := command.ResolveDirection(query, room.ExitNames())
	switch m.Status {
	case command.MatchResolved:
		return e.traverse(m.Name)
	case command.MatchAmbiguous:
		e.player.AwaitDirection(query, m.Candidates)
		return e.say("Did you want to go %s?", strings.Join(m.Candidates, " or "))
	default:
		return e.say("There's no way to go %s.", query)
	}
}

// traverse moves the player through the named exit of the current room,
// honoring its lock, and settles the destination's win condition.
//
// Precondition: exitName is an exit of the current room.
func (e *Engine) traverse(exitName string) error {
	exit, dest, err := e.world.Navigate(e.player.RoomID, exitName)
	if err != nil {
		return err
	}

	if exit.Locked() {
		if missing := e.player.Inventory.Missing(exit.Requires); len(missing) > 0 {
			e.logger.Debug("exit locked",
				zap.String("exit", exit.Name),
				zap.Strings("missing", missing),
			)
			return e.say("You need the %s to go %s.", joinAnd(exit.Requires), exit.Name)
		}
	}

	from := e.player.MoveTo(dest.ID)
	e.logger.Info("player moved",
		zap.Int("from", from),
		zap.Int("to", dest.ID),
		zap.String("exit", exit.Name),
	)

	if err := e.say("You go %s.", exit.Name); err != nil {
		return err
	}
	if err := e.out.WriteRoom(buildRoomView(dest)); err != nil {
		return fmt.Errorf("writing room: %w", err)
	}

	if !dest.IsGoal() {
		return nil
	}
	if e.player.Inventory.ContainsAll(dest.WinningItems) {
		e.player.End(session.Won)
		return e.say(msgVictory)
	}
	e.player.End(session.Lost)
	return e.say(msgDefeat)
}

func (e *Engine) look() error {
	room, err := e.currentRoom()
	if err != nil {
		return err
	}
	if err := e.out.WriteRoom(buildRoomView(room)); err != nil {
		return fmt.Errorf("writing room: %w", err)
	}
	return nil
}

// joinAnd renders names as "a", "a and b", or "a, b and c".
func joinAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
