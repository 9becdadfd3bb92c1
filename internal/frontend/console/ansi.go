// Package console runs the game over a line-oriented terminal with optional ANSI styling.
package console

// ANSI escape codes used when styling is enabled.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Green = "\033[32m"
	White = "\033[37m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

// Styler applies colors only when enabled. The zero value is plain.
type Styler struct {
	Enabled bool
}

// Apply colors text when styling is enabled and returns it unchanged otherwise.
func (s Styler) Apply(color, text string) string {
	if !s.Enabled || text == "" {
		return text
	}
	return Colorize(color, text)
}
