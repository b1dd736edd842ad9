package command

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
)

// ArityError 已知命令但参数个数不对
type ArityError struct {
	Command Command
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s, got %d", requirement(e.Command), ErrArity, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

func requirement(c Command) string {
	switch n := c.Arity(); n {
	case 0:
		return fmt.Sprintf("%s takes no arguments", c)
	case 1:
		return fmt.Sprintf("%s requires 1 argument", c)
	default:
		return fmt.Sprintf("%s requires %d arguments", c, n)
	}
}

// Diagnostic 把解析错误转换成给用户看的一行提示
func Diagnostic(err error) string {
	var arityErr *ArityError
	if errors.As(err, &arityErr) {
		return fmt.Sprintf("- %s, e.g. %s", requirement(arityErr.Command), arityErr.Command.Example())
	}
	return fmt.Sprintf("- %s. Use `HELP` to view commands.", err)
}
