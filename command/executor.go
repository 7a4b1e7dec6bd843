package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/codec"
	"github.com/hupe1980/triedo/model"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatText renders results in the line format of the grammar.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per result.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Result is the outcome of executing a Command.
type Result struct {
	Kind  Kind
	ID    model.ID     // Add, Done
	Found bool         // Done
	Items []model.Item // Search
}

// Text renders the result in the line format. Search results span several
// lines; the returned string has no trailing newline.
func (r Result) Text() string {
	switch r.Kind {
	case Add:
		return r.ID.String()
	case Done:
		if r.Found {
			return "done"
		}
		return "not found"
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d item(s) found", len(r.Items))
		for _, it := range r.Items {
			b.WriteByte('\n')
			b.WriteString(it.String())
		}
		return b.String()
	}
}

type jsonResult struct {
	Command string       `json:"command"`
	ID      *model.ID    `json:"id,omitempty"`
	Found   *bool        `json:"found,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Items   []model.Item `json:"items,omitempty"`
}

func (r Result) toJSON() jsonResult {
	out := jsonResult{Command: r.Kind.String()}
	switch r.Kind {
	case Add:
		out.ID = &r.ID
	case Done:
		out.ID = &r.ID
		out.Found = &r.Found
	default:
		n := len(r.Items)
		out.Count = &n
		out.Items = r.Items
	}
	return out
}

// Executor runs commands against a list and writes their results.
type Executor struct {
	list   triedo.Lister
	format Format
	codec  codec.Codec
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithFormat selects the output format. Default: FormatText.
func WithFormat(f Format) ExecutorOption {
	return func(e *Executor) {
		e.format = f
	}
}

// WithCodec selects the JSON codec used by FormatJSON. Default: codec.Default.
func WithCodec(c codec.Codec) ExecutorOption {
	return func(e *Executor) {
		if c != nil {
			e.codec = c
		}
	}
}

// NewExecutor creates an Executor over list.
func NewExecutor(list triedo.Lister, opts ...ExecutorOption) *Executor {
	e := &Executor{
		list:   list,
		format: FormatText,
		codec:  codec.Default,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute applies cmd to the list.
func (e *Executor) Execute(cmd Command) Result {
	switch cmd.Kind {
	case Add:
		it := e.list.Create(cmd.Words, cmd.Tags)
		return Result{Kind: Add, ID: it.ID}
	case Done:
		_, ok := e.list.Complete(cmd.ID)
		return Result{Kind: Done, ID: cmd.ID, Found: ok}
	default:
		return Result{Kind: Search, Items: e.list.Search(cmd.Terms)}
	}
}

// Render encodes a result according to the configured format.
func (e *Executor) Render(r Result) ([]byte, error) {
	if e.format == FormatJSON {
		return e.codec.Marshal(r.toJSON())
	}
	return []byte(r.Text()), nil
}

// Run parses, executes and writes one line. Parse errors are returned
// without touching the list or w.
func (e *Executor) Run(w io.Writer, line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}
	out, err := e.Render(e.Execute(cmd))
	if err != nil {
		return fmt.Errorf("render %s: %w", cmd.Kind, err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
