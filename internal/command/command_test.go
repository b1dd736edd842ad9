package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Request
	}{
		{"no args", "KEYS", Request{Command: Keys, Args: []string{}}},
		{"lower case command", "add fruit apple", Request{Command: Add, Args: []string{"fruit", "apple"}}},
		{"mixed case keeps args", "MemberExists Fruit Apple", Request{Command: MemberExists, Args: []string{"Fruit", "Apple"}}},
		{"whitespace runs", "  ADD \t fruit    apple  ", Request{Command: Add, Args: []string{"fruit", "apple"}}},
		{"cls", "cls", Request{Command: Cls, Args: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, line := range []string{"", "   ", "\t \t"} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestParseInvalidCommand(t *testing.T) {
	_, err := Parse("SADD fruit apple")
	require.ErrorIs(t, err, ErrInvalidCommand)
	assert.Contains(t, err.Error(), `"SADD"`)
	assert.Equal(t, "- unknown command \"SADD\". Use `HELP` to view commands.", Diagnostic(err))
}

func TestParseArity(t *testing.T) {
	for c, def := range definitions {
		for _, n := range []int{def.arity - 1, def.arity + 1, def.arity + 3} {
			if n < 0 {
				continue
			}
			line := strings.TrimSpace(strings.ToLower(def.name) + strings.Repeat(" x", n))
			_, err := Parse(line)
			require.ErrorIs(t, err, ErrArity, line)

			var arityErr *ArityError
			require.ErrorAs(t, err, &arityErr)
			assert.Equal(t, c, arityErr.Command)
			assert.Equal(t, n, arityErr.Got)
		}
	}
}

func TestDiagnosticArity(t *testing.T) {
	_, err := Parse("ADD fruit")
	assert.Equal(t, "- ADD requires 2 arguments, e.g. ADD fruit apple", Diagnostic(err))

	_, err = Parse("MEMBERS")
	assert.Equal(t, "- MEMBERS requires 1 argument, e.g. MEMBERS fruit", Diagnostic(err))

	_, err = Parse("KEYS fruit")
	assert.Equal(t, "- KEYS takes no arguments, e.g. KEYS", Diagnostic(err))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "MEMBEREXISTS", MemberExists.String())
	assert.Equal(t, "Command(99)", Command(99).String())

	c, ok := Lookup("removeAll")
	require.True(t, ok)
	assert.Equal(t, RemoveAll, c)
	assert.Equal(t, 1, c.Arity())
}

func TestReplyLines(t *testing.T) {
	assert.Equal(t, []string{"(empty set)"}, ListReply(nil).Lines())
	assert.Equal(t, []string{"1) a", "2) b"}, ListReply{"a", "b"}.Lines())
	assert.Equal(t, []string{") true"}, BoolReply(true).Lines())
	assert.Equal(t, []string{") false"}, BoolReply(false).Lines())
	assert.Equal(t, []string{") Added"}, statusAdded.Lines())
}
