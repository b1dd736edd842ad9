package command

import (
	"errors"
	"fmt"

	"SetKV/internal/store"
)

// storeError 把 store 的业务错误转换成 ErrorReply，其余错误原样返回
func storeError(err error) (Reply, error) {
	switch {
	case errors.Is(err, store.ErrKeyNotFound),
		errors.Is(err, store.ErrMemberNotFound),
		errors.Is(err, store.ErrMemberExists):
		return ErrorReply{Err: err}, nil
	default:
		return nil, err
	}
}

func (in *Interpreter) keys([]string) (Reply, error) {
	return ListReply(in.store.Keys()), nil
}

func (in *Interpreter) members(args []string) (Reply, error) {
	members, err := in.store.Members(args[0])
	if err != nil {
		return storeError(err)
	}
	return ListReply(members), nil
}

func (in *Interpreter) add(args []string) (Reply, error) {
	if err := in.store.Add(args[0], args[1]); err != nil {
		return storeError(err)
	}
	return statusAdded, nil
}

func (in *Interpreter) remove(args []string) (Reply, error) {
	if err := in.store.Remove(args[0], args[1]); err != nil {
		return storeError(err)
	}
	return statusRemoved, nil
}

func (in *Interpreter) removeAll(args []string) (Reply, error) {
	if err := in.store.RemoveAll(args[0]); err != nil {
		return storeError(err)
	}
	return statusRemoved, nil
}

func (in *Interpreter) clear([]string) (Reply, error) {
	in.store.Clear()
	return statusCleared, nil
}

func (in *Interpreter) keyExists(args []string) (Reply, error) {
	return BoolReply(in.store.KeyExists(args[0])), nil
}

func (in *Interpreter) memberExists(args []string) (Reply, error) {
	return BoolReply(in.store.MemberExists(args[0], args[1])), nil
}

func (in *Interpreter) allMembers([]string) (Reply, error) {
	return ListReply(in.store.AllMembers()), nil
}

func (in *Interpreter) items([]string) (Reply, error) {
	items := in.store.Items()
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = item.Key + ": " + item.Member
	}
	return ListReply(entries), nil
}

func (in *Interpreter) help([]string) (Reply, error) {
	lines, err := in.options.Help.Lines()
	if err != nil {
		return nil, fmt.Errorf("help: %w", err)
	}
	return TextReply(lines), nil
}

func (in *Interpreter) cls([]string) (Reply, error) {
	if err := in.options.Screen.Clear(); err != nil {
		return nil, fmt.Errorf("cls: %w", err)
	}
	return TextReply(nil), nil
}
