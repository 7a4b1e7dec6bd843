package command

import (
	"fmt"
	"strings"

	"github.com/hupe1980/triedo/model"
)

// Kind identifies a command verb.
type Kind int

const (
	// Add creates an item.
	Add Kind = iota
	// Done completes an item.
	Done
	// Search queries open items.
	Search
)

// String returns the verb as written in input lines.
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Done:
		return "done"
	case Search:
		return "search"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is a parsed input line.
type Command struct {
	Kind  Kind
	Words []string     // Add
	Tags  []string     // Add
	ID    model.ID     // Done
	Terms []model.Term // Search
}

// Parse parses a single input line.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyLine
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "add":
		return parseAdd(line, rest)
	case "done":
		return parseDone(line, rest)
	case "search":
		return parseSearch(line, rest)
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
}

func parseAdd(line, rest string) (Command, error) {
	if !strings.HasPrefix(rest, `"`) {
		return Command{}, malformed(line, "description must be quoted")
	}
	desc, tail, ok := strings.Cut(rest[1:], `"`)
	if !ok {
		return Command{}, malformed(line, "unterminated description")
	}

	words := strings.Fields(desc)
	if len(words) == 0 {
		return Command{}, malformed(line, "empty description")
	}

	var tags []string
	for _, f := range strings.Fields(tail) {
		t, ok := strings.CutPrefix(f, "#")
		if !ok || t == "" {
			return Command{}, malformed(line, "invalid tag %q", f)
		}
		tags = append(tags, t)
	}

	return Command{Kind: Add, Words: words, Tags: tags}, nil
}

func parseDone(line, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, malformed(line, "expected exactly one id")
	}
	id, err := model.ParseID(fields[0])
	if err != nil {
		return Command{}, malformed(line, "%v", err)
	}
	return Command{Kind: Done, ID: id}, nil
}

func parseSearch(line, rest string) (Command, error) {
	fields := strings.Fields(rest)
	terms := make([]model.Term, 0, len(fields))
	for _, f := range fields {
		if t, ok := strings.CutPrefix(f, "#"); ok {
			if t == "" {
				return Command{}, malformed(line, "empty tag term")
			}
			terms = append(terms, model.Tag(t))
			continue
		}
		terms = append(terms, model.Word(f))
	}
	return Command{Kind: Search, Terms: terms}, nil
}
