package testutil

import (
	"testing"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// NewWorld loads a world from a JSON or YAML document or fails the test.
func NewWorld(t testing.TB, doc string) *world.World {
	t.Helper()
	w, err := world.LoadFromBytes([]byte(doc))
	if err != nil {
		t.Fatalf("loading test world: %v", err)
	}
	return w
}
