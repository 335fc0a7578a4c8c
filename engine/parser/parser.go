// Package parser converts raw command lines into Command structs.
// Intentionally dumb: the grammar is at most two words, verb first.
package parser

import "strings"

// Command is the tokenized form of one player input line.
type Command struct {
	Verb string
	Arg  string // optional second word (object name or spoken word)
}

// Parse splits the input into at most two whitespace-separated tokens.
// Anything past the second token is ignored; the catalog's command grammar
// is strictly verb [object].
func Parse(input string) Command {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	switch len(words) {
	case 0:
		return Command{}
	case 1:
		return Command{Verb: words[0]}
	default:
		return Command{Verb: words[0], Arg: words[1]}
	}
}
