// Package store 实现键到成员集合的内存多重映射。
//
// 每个键至少有一个成员：集合被删空时键随之删除。键与成员都区分大小写，
// 并按插入顺序枚举。Store 不加锁，只能由单个协程持有。
package store

import "SetKV/internal/algo"

// Item 一个键值对，用于 Items 枚举
type Item struct {
	Key    string
	Member string
}

type entry struct {
	seq     uint64
	members *Set
}

type Store struct {
	data    map[string]*entry
	order   *algo.SkipList[uint64, string]
	next    uint64
	bloom   *algo.BloomFilter
	options *Options
}

// New 创建一个空的 Store
func New(opts ...Option) *Store {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Store{
		data:    make(map[string]*entry),
		order:   algo.NewSkipList[uint64, string](lessSeq),
		bloom:   algo.NewBloomFilter(options.BloomFilterSize, options.BloomFilterFP),
		options: options,
	}
}

func bloomKey(key, member string) []byte {
	buf := make([]byte, 0, len(key)+1+len(member))
	buf = append(buf, key...)
	buf = append(buf, 0)
	return append(buf, member...)
}

// Add 向 key 的集合添加成员，key 不存在时创建
func (s *Store) Add(key, member string) error {
	e, exists := s.data[key]
	if !exists {
		s.next++
		e = &entry{seq: s.next, members: NewSet()}
		s.data[key] = e
		s.order.Put(e.seq, key)
	}
	if !e.members.Add(member) {
		return ErrMemberExists
	}
	s.bloom.Add(bloomKey(key, member))
	return nil
}

// Remove 删除成员，集合为空时一并删除 key
func (s *Store) Remove(key, member string) error {
	e, exists := s.data[key]
	if !exists {
		return ErrKeyNotFound
	}
	if !e.members.Remove(member) {
		return ErrMemberNotFound
	}
	if e.members.Len() == 0 {
		s.drop(key, e)
	}
	return nil
}

// RemoveAll 删除 key 及其全部成员
func (s *Store) RemoveAll(key string) error {
	e, exists := s.data[key]
	if !exists {
		return ErrKeyNotFound
	}
	s.drop(key, e)
	return nil
}

func (s *Store) drop(key string, e *entry) {
	delete(s.data, key)
	s.order.Delete(e.seq)
}

// Clear 清空所有键
func (s *Store) Clear() {
	s.data = make(map[string]*entry)
	s.order.Clear()
	s.bloom.Reset()
}

func (s *Store) KeyExists(key string) bool {
	_, exists := s.data[key]
	return exists
}

// MemberExists key 不存在时返回 false
func (s *Store) MemberExists(key, member string) bool {
	if !s.bloom.Contains(bloomKey(key, member)) {
		return false
	}
	e, exists := s.data[key]
	if !exists {
		return false
	}
	return e.members.Contains(member)
}

func (s *Store) Keys() []string {
	return s.order.Values()
}

func (s *Store) Members(key string) ([]string, error) {
	e, exists := s.data[key]
	if !exists {
		return nil, ErrKeyNotFound
	}
	return e.members.Members(), nil
}

// AllMembers 按键顺序展开所有成员
func (s *Store) AllMembers() []string {
	var members []string
	s.order.Range(func(_ uint64, key string) bool {
		members = append(members, s.data[key].members.Members()...)
		return true
	})
	return members
}

// Items 按键顺序展开所有 (key, member)
func (s *Store) Items() []Item {
	var items []Item
	s.order.Range(func(_ uint64, key string) bool {
		for _, member := range s.data[key].members.Members() {
			items = append(items, Item{Key: key, Member: member})
		}
		return true
	})
	return items
}

// Len 返回键的个数
func (s *Store) Len() int {
	return len(s.data)
}
