package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// yamlWorldFile is the wrapped form of a world file: {rooms: [...]}.
// A bare top-level sequence of rooms is accepted as well.
type yamlWorldFile struct {
	Rooms []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the file representation of a room. JSON map files decode
// through the same structures since JSON is valid YAML.
type yamlRoom struct {
	Name         string              `yaml:"name"`
	Desc         string              `yaml:"desc"`
	Items        []string            `yaml:"items"`
	Exits        yamlExits           `yaml:"exits"`
	LockedExits  map[string][]string `yaml:"locked_exits"`
	WinningItems []string            `yaml:"winning_items"`
}

// yamlExit is one exit entry, kept in document order.
type yamlExit struct {
	Name   string
	Target int
}

// yamlExits decodes an exit mapping while preserving key order, which a Go
// map would lose.
type yamlExits []yamlExit

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *yamlExits) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: exits must be a mapping of name to room index", value.Line)
	}
	out := make(yamlExits, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		var target int
		if err := val.Decode(&target); err != nil {
			return fmt.Errorf("line %d: exit %q: target must be a room index: %w", val.Line, key.Value, err)
		}
		out = append(out, yamlExit{Name: key.Value, Target: target})
	}
	*e = out
	return nil
}

// LoadFromFile reads and validates a world file (JSON or YAML).
//
// Precondition: path must point to a readable world file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	w, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading world file %s: %w", path, err)
	}
	return w, nil
}

// LoadFromBytes parses and validates a world from JSON or YAML bytes.
//
// Precondition: data must describe a list of rooms conforming to the world schema.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing world: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parsing world: document is empty")
	}

	var yrooms []yamlRoom
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&yrooms); err != nil {
			return nil, fmt.Errorf("decoding rooms: %w", err)
		}
	case yaml.MappingNode:
		var file yamlWorldFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("decoding rooms: %w", err)
		}
		yrooms = file.Rooms
	default:
		return nil, fmt.Errorf("parsing world: top level must be a list of rooms")
	}

	rooms, err := convertRooms(yrooms)
	if err != nil {
		return nil, err
	}
	w, err := NewWorld(rooms)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

// convertRooms converts the parsed file structures into domain types.
// Item and exit names are lowercased since player input is.
func convertRooms(yrooms []yamlRoom) ([]*Room, error) {
	rooms := make([]*Room, 0, len(yrooms))
	for i, yr := range yrooms {
		room := &Room{
			ID:          i,
			Name:        strings.TrimSpace(yr.Name),
			Description: strings.TrimSpace(yr.Desc),
			Items:       inventory.NewSet(),
		}

		for _, item := range yr.Items {
			item = normalize(item)
			if item == "" {
				return nil, fmt.Errorf("room %d (%s): item name must not be empty", i, room.Name)
			}
			if !room.Items.Add(item) {
				return nil, fmt.Errorf("room %d (%s): duplicate item %q", i, room.Name, item)
			}
		}

		locks := make(map[string][]string, len(yr.LockedExits))
		for name, required := range yr.LockedExits {
			if len(required) == 0 {
				return nil, fmt.Errorf("room %d (%s): locked exit %q requires no items", i, room.Name, name)
			}
			locks[normalize(name)] = normalizeAll(required)
		}

		for _, ye := range yr.Exits {
			name := normalize(ye.Name)
			room.Exits = append(room.Exits, Exit{
				Name:     name,
				Target:   ye.Target,
				Requires: locks[name],
			})
			delete(locks, name)
		}
		for name := range locks {
			return nil, fmt.Errorf("room %d (%s): locked exit %q is not an exit", i, room.Name, name)
		}

		// An empty list declares no goal.
		if len(yr.WinningItems) > 0 {
			room.WinningItems = normalizeAll(yr.WinningItems)
		}

		rooms = append(rooms, room)
	}
	return rooms, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, normalize(s))
	}
	return out
}
