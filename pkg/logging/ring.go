package logging

import "sync"

// Ring is a thread-safe circular buffer holding the most recent
// formatted log lines, overwriting the oldest when full.
type Ring struct {
	mu    sync.RWMutex
	buf   []string
	size  int
	head  int // next write position
	count int // number of lines stored
}

// NewRing creates a ring with the given capacity.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{
		buf:  make([]string, size),
		size: size,
	}
}

// Add appends a line to the ring, overwriting the oldest if full.
func (r *Ring) Add(line string) {
	r.mu.Lock()
	r.buf[r.head] = line
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
	r.mu.Unlock()
}

// Lines returns the stored lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	result := make([]string, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.buf[(start+i)%r.size]
	}
	return result
}

// Latest returns the most recent n lines, newest first.
func (r *Ring) Latest(n int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return nil
	}
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = r.buf[(r.head-1-i+r.size)%r.size]
	}
	return result
}
