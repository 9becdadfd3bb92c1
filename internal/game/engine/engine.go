// Package engine interprets player input and applies it to the world.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// ErrSessionOver is returned by Handle once the session reached a terminal status.
var ErrSessionOver = errors.New("session is over")

// Player-facing messages that do not depend on the command.
const (
	msgNoCommand      = "Sorry, you need to enter a command."
	msgInvalidCommand = "Invalid command. Type 'help' for a list of valid commands."
	msgGoodbye        = "Goodbye!"
	msgUseQuit        = "Use 'quit' to exit."
	msgHelpHeader     = "You can run the following commands:"
)

// Engine runs one player's game: it resolves each input line to a command
// and applies it to the world.
// It is driven by a single turn loop and is not safe for concurrent use.
type Engine struct {
	world    *world.World
	registry *command.Registry
	player   *session.Player
	out      Output
	logger   *zap.Logger
}

// New creates an Engine with a fresh player standing in the world's first room.
//
// Precondition: w, out, and logger must be non-nil.
// Postcondition: Returns an Engine whose player is Playing with nothing pending.
func New(w *world.World, out Output, logger *zap.Logger) *Engine {
	player := session.New(w.StartRoom().ID)
	return &Engine{
		world:    w,
		registry: command.DefaultRegistry(),
		player:   player,
		out:      out,
		logger:   logger.With(zap.String("session", player.ID)),
	}
}

// Player returns the session state.
func (e *Engine) Player() *session.Player {
	return e.player
}

// Start displays the starting room.
func (e *Engine) Start() error {
	e.logger.Info("session started",
		zap.Int("rooms", e.world.RoomCount()),
		zap.Int("items", e.world.ItemCount()),
	)
	return e.look()
}

// Handle processes one raw input line.
//
// Postcondition: Returns the session status after the turn. A non-nil error
// means the output failed, or ErrSessionOver if the session had already ended.
func (e *Engine) Handle(line string) (session.Status, error) {
	if e.player.Status.Terminal() {
		return e.player.Status, ErrSessionOver
	}
	e.player.Turns++

	parsed := command.Parse(line)
	err := e.dispatch(parsed)
	if err != nil {
		err = fmt.Errorf("turn %d: %w", e.player.Turns, err)
	}
	if e.player.Status.Terminal() {
		e.logger.Info("session ended",
			zap.Stringer("status", e.player.Status),
			zap.Int("turns", e.player.Turns),
			zap.Int("moves", e.player.Moves),
		)
	}
	return e.player.Status, err
}

// dispatch picks the action for a parsed line. A pending direction choice
// consumes the line first; then a bare direction token means "go"; then the
// verb registry decides.
func (e *Engine) dispatch(parsed command.ParseResult) error {
	if choice, ok := e.player.TakePending().(session.AwaitingDirectionChoice); ok {
		return e.choose(choice, parsed.Line())
	}

	if parsed.Empty() {
		return e.say(msgNoCommand)
	}

	if e.world.IsDirectionToken(parsed.Command) {
		e.logger.Debug("implicit go", zap.String("query", parsed.Line()))
		return e.move(parsed.Line())
	}

	verb := e.registry.Verb(parsed.Command)
	e.logger.Debug("turn",
		zap.Stringer("verb", verb),
		zap.String("token", parsed.Command),
		zap.String("args", parsed.RawArgs),
	)

	switch verb {
	case command.VerbGo:
		return e.move(parsed.RawArgs)
	case command.VerbLook:
		return e.look()
	case command.VerbGet:
		return e.get(parsed.RawArgs)
	case command.VerbDrop:
		return e.drop(parsed.RawArgs)
	case command.VerbInventory:
		return e.inventory()
	case command.VerbHelp:
		return e.help()
	case command.VerbQuit:
		return e.quit()
	case command.VerbUnknown:
		return e.say(msgInvalidCommand)
	default:
		return fmt.Errorf("verb %v has no handler", verb)
	}
}

// choose settles a pending direction choice. Only an exact candidate moves
// the player; anything else is rejected without acting.
func (e *Engine) choose(choice session.AwaitingDirectionChoice, input string) error {
	exit, ok := choice.Choose(input)
	if !ok {
		e.logger.Debug("direction choice rejected",
			zap.String("query", choice.Query),
			zap.String("input", input),
		)
		return e.say("Please choose from %s", choice.Options())
	}
	return e.traverse(exit)
}

func (e *Engine) help() error {
	if err := e.say(msgHelpHeader); err != nil {
		return err
	}
	for _, cmd := range e.registry.Commands() {
		if err := e.say("  %s", cmd.Usage); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) quit() error {
	e.player.End(session.Quit)
	return e.say(msgGoodbye)
}

// Interrupt ends the session as if the player had typed quit.
// It does nothing once the session is over.
func (e *Engine) Interrupt() error {
	if e.player.Status.Terminal() {
		return nil
	}
	e.logger.Info("session interrupted")
	err := e.quit()
	e.logger.Info("session ended",
		zap.Stringer("status", e.player.Status),
		zap.Int("turns", e.player.Turns),
		zap.Int("moves", e.player.Moves),
	)
	return err
}

// EndOfInput reminds the player how to leave after an end-of-input condition.
func (e *Engine) EndOfInput() error {
	return e.say(msgUseQuit)
}

func (e *Engine) say(format string, args ...any) error {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	if err := e.out.WriteLine(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (e *Engine) currentRoom() (*world.Room, error) {
	room, ok := e.world.Room(e.player.RoomID)
	if !ok {
		return nil, fmt.Errorf("player is in unknown room %d", e.player.RoomID)
	}
	return room, nil
}
