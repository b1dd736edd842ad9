package algo

import "math/rand"

const (
	MaxLevel    = 32
	Probability = 0.25
)

type node[K comparable, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

type LessFunc[T comparable] func(a, b T) bool

// SkipList 有序索引，仅供单个协程使用
type SkipList[K comparable, V any] struct {
	head   *node[K, V]
	level  int
	length int
	less   LessFunc[K]
}

// NewSkipList 创建一个按 less 排序的跳表
func NewSkipList[K comparable, V any](less LessFunc[K]) *SkipList[K, V] {
	return &SkipList[K, V]{
		head: &node[K, V]{forward: make([]*node[K, V], MaxLevel)},
		less: less,
	}
}

func (s *SkipList[K, V]) randomLevel() int {
	level := 0
	for rand.Float64() < Probability && level < MaxLevel-1 {
		level++
	}
	return level
}

// seek 返回每一层中最后一个小于 key 的节点
func (s *SkipList[K, V]) seek(key K) []*node[K, V] {
	update := make([]*node[K, V], MaxLevel)
	curr := s.head
	for i := s.level; i >= 0; i-- {
		for next := curr.forward[i]; next != nil && s.less(next.key, key); next = curr.forward[i] {
			curr = next
		}
		update[i] = curr
	}
	return update
}

// Put 插入或覆盖，返回是否为新键
func (s *SkipList[K, V]) Put(key K, value V) bool {
	update := s.seek(key)
	if next := update[0].forward[0]; next != nil && next.key == key {
		next.value = value
		return false
	}

	level := s.randomLevel()
	if level > s.level {
		for i := s.level + 1; i <= level; i++ {
			update[i] = s.head
		}
		s.level = level
	}

	n := &node[K, V]{key: key, value: value, forward: make([]*node[K, V], level+1)}
	for i := 0; i <= level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	s.length++
	return true
}

// Get 查找 key 对应的值
func (s *SkipList[K, V]) Get(key K) (V, bool) {
	update := s.seek(key)
	if next := update[0].forward[0]; next != nil && next.key == key {
		return next.value, true
	}
	var zero V
	return zero, false
}

// Delete 删除 key，返回是否存在
func (s *SkipList[K, V]) Delete(key K) bool {
	update := s.seek(key)
	target := update[0].forward[0]
	if target == nil || target.key != key {
		return false
	}

	for i := 0; i <= s.level; i++ {
		if update[i].forward[i] != target {
			break
		}
		update[i].forward[i] = target.forward[i]
	}
	for s.level > 0 && s.head.forward[s.level] == nil {
		s.level--
	}
	s.length--
	return true
}

// Range 按顺序遍历，fn 返回 false 时停止
func (s *SkipList[K, V]) Range(fn func(key K, value V) bool) {
	for curr := s.head.forward[0]; curr != nil; curr = curr.forward[0] {
		if !fn(curr.key, curr.value) {
			return
		}
	}
}

// Values 按顺序返回所有值
func (s *SkipList[K, V]) Values() []V {
	values := make([]V, 0, s.length)
	s.Range(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (s *SkipList[K, V]) Clear() {
	s.head = &node[K, V]{forward: make([]*node[K, V], MaxLevel)}
	s.level = 0
	s.length = 0
}

func (s *SkipList[K, V]) Len() int {
	return s.length
}
