package stackalloc

import lru "github.com/hashicorp/golang-lru/v2"

// Pool recycles freed GuardedOSStacks by size class, so that a program
// constructing many short-lived generators doesn't pay an
// mmap/mprotect syscall pair for every one.
type Pool struct {
	cache *lru.Cache[int, []*GuardedOSStack]
}

// NewPool creates a Pool holding at most maxSizeClasses distinct stack
// sizes worth of free list.
func NewPool(maxSizeClasses int) (*Pool, error) {
	c, err := lru.New[int, []*GuardedOSStack](maxSizeClasses)
	if err != nil {
		return nil, err
	}
	return &Pool{cache: c}, nil
}

// Get returns a recycled stack of at least size bytes if one is cached,
// otherwise allocates a fresh one.
func (p *Pool) Get(size int) (*GuardedOSStack, error) {
	size = roundUp(size, pageSize)
	if free, ok := p.cache.Get(size); ok && len(free) > 0 {
		s := free[len(free)-1]
		p.cache.Add(size, free[:len(free)-1])
		return s, nil
	}
	return NewGuardedOSStack(size)
}

// Put returns a stack to the pool instead of unmapping it. The caller
// must not use s again except through a future Pool.Get.
func (p *Pool) Put(s *GuardedOSStack) {
	size := s.Size()
	free, _ := p.cache.Get(size)
	p.cache.Add(size, append(free, s))
}

// Evict drops and unmaps every pooled stack, for shutdown paths.
func (p *Pool) Evict() {
	for _, size := range p.cache.Keys() {
		free, ok := p.cache.Peek(size)
		if !ok {
			continue
		}
		for _, s := range free {
			_ = s.Close()
		}
	}
	p.cache.Purge()
}
