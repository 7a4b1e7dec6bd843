package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the stable identifier of an item.
// IDs are assigned in strictly increasing order starting at 0.
type ID uint64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses the decimal form of an ID.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(v), nil
}

// Item is a single todo entry.
//
// Words and Tags are fixed at creation; only Done may change, once,
// from false to true.
type Item struct {
	ID    ID       `json:"id"`
	Words []string `json:"words"`
	Tags  []string `json:"tags"`
	Done  bool     `json:"done"`
}

// String renders the item as `<id> "<words>" #tag ...`.
func (it Item) String() string {
	var b strings.Builder
	b.WriteString(it.ID.String())
	b.WriteString(` "`)
	b.WriteString(strings.Join(it.Words, " "))
	b.WriteByte('"')
	for _, t := range it.Tags {
		b.WriteString(" #")
		b.WriteString(t)
	}
	return b.String()
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	return Item{
		ID:    it.ID,
		Words: append([]string(nil), it.Words...),
		Tags:  append([]string(nil), it.Tags...),
		Done:  it.Done,
	}
}

// TermKind selects which index a term is evaluated against.
type TermKind uint8

const (
	// WordTerm matches against description words.
	WordTerm TermKind = iota
	// TagTerm matches against tags.
	TagTerm
)

// String returns "word" or "tag".
func (k TermKind) String() string {
	switch k {
	case WordTerm:
		return "word"
	case TagTerm:
		return "tag"
	default:
		return fmt.Sprintf("TermKind(%d)", uint8(k))
	}
}

// Term is one query term.
type Term struct {
	Kind  TermKind `json:"kind"`
	Value string   `json:"value"`
}

// Word returns a word term.
func Word(s string) Term { return Term{Kind: WordTerm, Value: s} }

// Tag returns a tag term. A leading '#' is not part of the value.
func Tag(s string) Term { return Term{Kind: TagTerm, Value: s} }

// String renders word terms verbatim and tag terms with a '#' prefix.
func (t Term) String() string {
	if t.Kind == TagTerm {
		return "#" + t.Value
	}
	return t.Value
}
