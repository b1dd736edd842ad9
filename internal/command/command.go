package command

import (
	"fmt"
	"strings"
)

type Command int

const (
	Keys Command = iota
	Members
	Add
	Remove
	RemoveAll
	Clear
	KeyExists
	MemberExists
	AllMembers
	Items
	Help
	Cls
)

type definition struct {
	name    string
	arity   int
	example string
}

var definitions = map[Command]definition{
	Keys:         {"KEYS", 0, "KEYS"},
	Members:      {"MEMBERS", 1, "MEMBERS fruit"},
	Add:          {"ADD", 2, "ADD fruit apple"},
	Remove:       {"REMOVE", 2, "REMOVE fruit apple"},
	RemoveAll:    {"REMOVEALL", 1, "REMOVEALL fruit"},
	Clear:        {"CLEAR", 0, "CLEAR"},
	KeyExists:    {"KEYEXISTS", 1, "KEYEXISTS fruit"},
	MemberExists: {"MEMBEREXISTS", 2, "MEMBEREXISTS fruit apple"},
	AllMembers:   {"ALLMEMBERS", 0, "ALLMEMBERS"},
	Items:        {"ITEMS", 0, "ITEMS"},
	Help:         {"HELP", 0, "HELP"},
	Cls:          {"CLS", 0, "CLS"},
}

var byName = func() map[string]Command {
	m := make(map[string]Command, len(definitions))
	for c, d := range definitions {
		m[d.name] = c
	}
	return m
}()

func (c Command) String() string {
	if s, ok := definitions[c]; ok {
		return s.name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Arity 命令名之后需要的参数个数
func (c Command) Arity() int {
	return definitions[c].arity
}

// Example 一条合法的调用示例
func (c Command) Example() string {
	return definitions[c].example
}

// Lookup 大小写不敏感地查找命令名
func Lookup(name string) (Command, bool) {
	c, ok := byName[strings.ToUpper(name)]
	return c, ok
}

// Request 通过校验的命令及其参数
type Request struct {
	Command Command
	Args    []string
}

// Parse 把一行输入解析成 Request。
// 连续空白视为一个分隔符；只有命令名做大小写折叠，参数保持原样。
func Parse(line string) (Request, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Request{}, ErrEmptyInput
	}

	cmd, ok := Lookup(tokens[0])
	if !ok {
		return Request{}, fmt.Errorf("%w %q", ErrInvalidCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) != cmd.Arity() {
		return Request{}, &ArityError{Command: cmd, Got: len(args)}
	}
	return Request{Command: cmd, Args: args}, nil
}
