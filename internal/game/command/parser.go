package command

import "strings"

// ParseResult holds the normalized tokens of an input line.
type ParseResult struct {
	// Command is the first token of the input, lowercased.
	Command string
	// Args are the remaining tokens after the command, lowercased.
	Args []string
	// RawArgs is Args joined by single spaces.
	RawArgs string
}

// Empty reports whether the line held no tokens.
func (p ParseResult) Empty() bool {
	return p.Command == ""
}

// Line returns every token joined by single spaces.
func (p ParseResult) Line() string {
	if p.RawArgs == "" {
		return p.Command
	}
	return p.Command + " " + p.RawArgs
}

// Tokenize lowercases line and splits it on whitespace.
//
// Postcondition: Returns the tokens in input order; nil for blank input.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ParseResult{}
	}
	if len(tokens) == 1 {
		return ParseResult{Command: tokens[0]}
	}
	return ParseResult{
		Command: tokens[0],
		Args:    tokens[1:],
		RawArgs: strings.Join(tokens[1:], " "),
	}
}
