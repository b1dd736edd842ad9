// Package command 解析用户输入，并把合法的命令分派到 store。
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"SetKV/internal/store"
)

type handler func(args []string) (Reply, error)

// Screen 终端清屏
type Screen interface {
	Clear() error
}

type ansiScreen struct {
	w io.Writer
}

func (s ansiScreen) Clear() error {
	_, err := io.WriteString(s.w, "\033[H\033[2J")
	return err
}

// Interpreter 持有唯一的 Store，一次处理一行输入
type Interpreter struct {
	store    *store.Store
	handlers map[Command]handler
	options  *Options
	log      *zap.Logger
}

// New 创建解释器，st 在整个会话期间归它所有
func New(st *store.Store, opts ...Option) *Interpreter {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Screen == nil {
		options.Screen = ansiScreen{w: options.Output}
	}

	in := &Interpreter{
		store:   st,
		options: options,
		log:     options.Logger.Named("command"),
	}
	in.handlers = map[Command]handler{
		Keys:         in.keys,
		Members:      in.members,
		Add:          in.add,
		Remove:       in.remove,
		RemoveAll:    in.removeAll,
		Clear:        in.clear,
		KeyExists:    in.keyExists,
		MemberExists: in.memberExists,
		AllMembers:   in.allMembers,
		Items:        in.items,
		Help:         in.help,
		Cls:          in.cls,
	}
	return in
}

// Execute 处理一行输入。
// 空行不产生输出；解析失败输出一行以 "- " 开头的提示；成功时输出结果和一个空行。
// 命令内部的意外错误写到错误输出，不会结束会话。只有写输出失败时才返回错误。
func (in *Interpreter) Execute(line string) error {
	req, err := Parse(line)
	if errors.Is(err, ErrEmptyInput) {
		return nil
	}
	if err != nil {
		in.log.Debug("rejected input", zap.String("line", line), zap.Error(err))
		return in.write(in.options.Output, Diagnostic(err))
	}

	lines, err := in.dispatch(req)
	if err != nil {
		in.log.Error("command failed", zap.Stringer("command", req.Command), zap.Error(err))
		return in.write(in.options.ErrOutput, err.Error())
	}
	return in.write(in.options.Output, append(lines, "")...)
}

// dispatch 执行命令并格式化结果，格式化过程中的 panic 同样被恢复
func (in *Interpreter) dispatch(req Request) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("%s: %v", req.Command, r)
		}
	}()

	h, ok := in.handlers[req.Command]
	if !ok {
		return nil, fmt.Errorf("%s: no handler", req.Command)
	}
	reply, err := h(req.Args)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, fmt.Errorf("%s: empty reply", req.Command)
	}
	return append([]string{}, reply.Lines()...), nil
}

func (in *Interpreter) write(w io.Writer, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
