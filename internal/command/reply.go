package command

import (
	"fmt"
	"strconv"
)

const emptySet = "(empty set)"

// Reply 命令的结构化结果
type Reply interface {
	Lines() []string
}

// StatusReply 成功的变更，例如 ") Added"
type StatusReply string

func (r StatusReply) Lines() []string {
	return []string{") " + string(r)}
}

// ErrorReply 可恢复的业务错误，例如 ") ERROR, key does not exist"
type ErrorReply struct {
	Err error
}

func (r ErrorReply) Lines() []string {
	return []string{") ERROR, " + r.Err.Error()}
}

type BoolReply bool

func (r BoolReply) Lines() []string {
	return []string{") " + strconv.FormatBool(bool(r))}
}

// ListReply 枚举结果，按 1 开始编号
type ListReply []string

func (r ListReply) Lines() []string {
	if len(r) == 0 {
		return []string{emptySet}
	}
	lines := make([]string, len(r))
	for i, entry := range r {
		lines[i] = fmt.Sprintf("%d) %s", i+1, entry)
	}
	return lines
}

// TextReply 原样输出
type TextReply []string

func (r TextReply) Lines() []string {
	return r
}

const (
	statusAdded   StatusReply = "Added"
	statusRemoved StatusReply = "Removed"
	statusCleared StatusReply = "Cleared"
)
