package store

import "SetKV/internal/algo"

// Set 按插入顺序保存的成员集合
type Set struct {
	seq   map[string]uint64
	order *algo.SkipList[uint64, string]
	next  uint64
}

func NewSet() *Set {
	return &Set{
		seq:   make(map[string]uint64),
		order: algo.NewSkipList[uint64, string](lessSeq),
	}
}

// Add 添加成员，已存在时返回 false
func (s *Set) Add(member string) bool {
	if _, exists := s.seq[member]; exists {
		return false
	}
	s.next++
	s.seq[member] = s.next
	s.order.Put(s.next, member)
	return true
}

// Remove 删除成员，不存在时返回 false
func (s *Set) Remove(member string) bool {
	n, exists := s.seq[member]
	if !exists {
		return false
	}
	delete(s.seq, member)
	s.order.Delete(n)
	return true
}

func (s *Set) Contains(member string) bool {
	_, exists := s.seq[member]
	return exists
}

// Members 按插入顺序返回成员副本
func (s *Set) Members() []string {
	return s.order.Values()
}

func (s *Set) Len() int {
	return len(s.seq)
}

func lessSeq(a, b uint64) bool { return a < b }
