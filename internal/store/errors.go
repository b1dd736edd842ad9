package store

import "errors"

var (
	ErrKeyNotFound    = errors.New("key does not exist")
	ErrMemberNotFound = errors.New("member does not exist")
	ErrMemberExists   = errors.New("member already exists for key")
)
