package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/triedo/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "add with tags",
			line: `add "buy milk" #errand #home`,
			want: Command{Kind: Add, Words: []string{"buy", "milk"}, Tags: []string{"errand", "home"}},
		},
		{
			name: "add without tags",
			line: `  add "call   mom"  `,
			want: Command{Kind: Add, Words: []string{"call", "mom"}},
		},
		{
			name: "done",
			line: "done 42",
			want: Command{Kind: Done, ID: 42},
		},
		{
			name: "search mixed",
			line: "search bu #err",
			want: Command{Kind: Search, Terms: []model.Term{model.Word("bu"), model.Tag("err")}},
		},
		{
			name: "search empty",
			line: "search",
			want: Command{Kind: Search, Terms: []model.Term{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"blank", "   ", ErrEmptyLine},
		{"unknown verb", "remove 1", ErrUnknownCommand},
		{"unquoted", "add buy milk", ErrMalformed},
		{"unterminated", `add "buy milk`, ErrMalformed},
		{"empty description", `add "  "`, ErrMalformed},
		{"bare tag", `add "buy" errand`, ErrMalformed},
		{"empty tag", `add "buy" #`, ErrMalformed},
		{"done without id", "done", ErrMalformed},
		{"done two ids", "done 1 2", ErrMalformed},
		{"done bad id", "done x", ErrMalformed},
		{"search empty tag", "search #", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("done x")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "done x", pe.Line)
	assert.Contains(t, pe.Error(), "malformed command")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "add", Add.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "search", Search.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
