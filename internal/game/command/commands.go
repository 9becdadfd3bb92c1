// Package command provides input normalization, the verb registry, and the
// direction and item resolvers that turn player text into canonical names.
package command

// Verb identifies a canonical command.
type Verb int

// Canonical verbs. VerbUnknown marks a token the registry does not recognize.
const (
	VerbUnknown Verb = iota
	VerbGo
	VerbLook
	VerbGet
	VerbDrop
	VerbInventory
	VerbHelp
	VerbQuit
)

var verbNames = map[Verb]string{
	VerbUnknown:   "unknown",
	VerbGo:        "go",
	VerbLook:      "look",
	VerbGet:       "get",
	VerbDrop:      "drop",
	VerbInventory: "inventory",
	VerbHelp:      "help",
	VerbQuit:      "quit",
}

// String returns the canonical name of the verb.
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are the accepted abbreviations for this command.
	Aliases []string
	// Usage is the form shown by help (e.g. "go ...").
	Usage string
	// Help is the short help text.
	Help string
	// Verb is what the dispatcher branches on.
	Verb Verb
}

// BuiltinCommands returns all built-in commands in help order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "go", Aliases: []string{"walk"}, Usage: "go ...", Help: "Move through an exit", Verb: VerbGo},
		{Name: "get", Aliases: []string{"take"}, Usage: "get ...", Help: "Pick up an item in the room", Verb: VerbGet},
		{Name: "drop", Aliases: nil, Usage: "drop ...", Help: "Drop an item you are carrying", Verb: VerbDrop},
		{Name: "look", Aliases: []string{"l"}, Usage: "look", Help: "Describe the current room", Verb: VerbLook},
		{Name: "inventory", Aliases: []string{"in", "i", "inv"}, Usage: "inventory", Help: "List what you are carrying", Verb: VerbInventory},
		{Name: "quit", Aliases: []string{"q", "exit"}, Usage: "quit", Help: "Leave the game", Verb: VerbQuit},
		{Name: "help", Aliases: []string{"h", "?"}, Usage: "help", Help: "Show available commands", Verb: VerbHelp},
	}
}
