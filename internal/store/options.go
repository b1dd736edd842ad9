package store

type Option func(*Options)

type Options struct {
	BloomFilterSize uint
	BloomFilterFP   float64
}

func defaultOptions() *Options {
	return &Options{
		BloomFilterSize: 1024,
		BloomFilterFP:   0.01,
	}
}

// WithBloomFilter 设置成员过滤器的预期容量和误判率
func WithBloomFilter(size uint, fp float64) Option {
	return func(opts *Options) {
		opts.BloomFilterSize = size
		opts.BloomFilterFP = fp
	}
}
