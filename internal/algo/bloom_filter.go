package algo

import (
	"hash/fnv"
	"math"

	"github.com/spaolacci/murmur3"
)

// BloomFilter 布隆过滤器，只能回答“可能存在”或“一定不存在”
type BloomFilter struct {
	m    uint64   // 位数
	k    uint64   // 哈希函数个数
	bits []uint64 // 位数组
}

// NewBloomFilter 按预期元素个数 n 和误判率 p 创建过滤器
func NewBloomFilter(n uint, p float64) *BloomFilter {
	if n == 0 {
		n = 1
	}
	if p <= 0 || p >= 1 {
		p = 0.01
	}
	m := optimalM(n, p)
	return &BloomFilter{
		m:    m,
		k:    optimalK(n, m),
		bits: make([]uint64, m/64+1),
	}
}

func optimalM(n uint, p float64) uint64 {
	m := -1 * float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)
	return uint64(math.Ceil(m))
}

func optimalK(n uint, m uint64) uint64 {
	k := uint64(math.Ceil(float64(m) / float64(n) * math.Ln2))
	if k == 0 {
		k = 1
	}
	return k
}

// positions 双哈希：FNV 与 MurmurHash 组合出 k 个位置
func (bf *BloomFilter) positions(data []byte) []uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data)
	sum1 := h.Sum64()
	sum2 := murmur3.Sum64(data)

	pos := make([]uint64, bf.k)
	for i := uint64(0); i < bf.k; i++ {
		pos[i] = (sum1 + i*sum2) % bf.m
	}
	return pos
}

func (bf *BloomFilter) Add(data []byte) {
	for _, p := range bf.positions(data) {
		bf.bits[p/64] |= 1 << (p % 64)
	}
}

func (bf *BloomFilter) Contains(data []byte) bool {
	for _, p := range bf.positions(data) {
		if bf.bits[p/64]&(1<<(p%64)) == 0 {
			return false
		}
	}
	return true
}

// Reset 清空所有位
func (bf *BloomFilter) Reset() {
	for i := range bf.bits {
		bf.bits[i] = 0
	}
}
