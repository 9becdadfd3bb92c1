package console

import (
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/engine"
)

// LineWriter is the sink a Renderer writes to.
type LineWriter interface {
	WriteLine(text string) error
}

// Renderer formats engine output as terminal text. It implements engine.Output.
type Renderer struct {
	w     LineWriter
	style Styler
}

// NewRenderer returns a Renderer writing to w, styled when color is true.
//
// Precondition: w must be non-nil.
func NewRenderer(w LineWriter, color bool) *Renderer {
	return &Renderer{w: w, style: Styler{Enabled: color}}
}

// WriteLine writes one message line.
func (r *Renderer) WriteLine(text string) error {
	return r.w.WriteLine(text)
}

// WriteRoom writes the room display block.
func (r *Renderer) WriteRoom(view engine.RoomView) error {
	for _, line := range RenderRoomView(view, r.style) {
		if err := r.w.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRoomView formats a RoomView as display lines. The items and exits
// sections are omitted when empty.
//
// Postcondition: Returns the lines in display order, ending with a blank line.
func RenderRoomView(view engine.RoomView, style Styler) []string {
	lines := []string{
		style.Apply(BrightYellow, "> "+view.Name),
		"",
		style.Apply(White, view.Description),
		"",
	}
	if len(view.Items) > 0 {
		lines = append(lines,
			style.Apply(Green, "Items: "+strings.Join(view.Items, ", ")),
			"",
		)
	}
	if len(view.Exits) > 0 {
		lines = append(lines,
			style.Apply(BrightCyan, "Exits: "+strings.Join(view.Exits, " ")),
			"",
		)
	}
	return lines
}
