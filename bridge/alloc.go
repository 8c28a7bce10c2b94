package bridge

import (
	"errors"
	"sync"
)

// LineCapacity is the size of the buffer a single log line is rendered
// into, terminator included. Lines longer than LineCapacity-1 bytes are
// truncated.
const LineCapacity = 65536

var (
	// ErrAllocatorExhausted is returned by BoundedAllocator when every
	// buffer it may hand out is in use.
	ErrAllocatorExhausted = errors.New("bridge: allocator exhausted")
	// ErrInvalidSize is returned for non-positive buffer sizes.
	ErrInvalidSize = errors.New("bridge: invalid buffer size")
)

// Allocator hands out line buffers. Acquire returns a zero-length slice
// with capacity of at least size; every successful Acquire is paired
// with exactly one Release of the same slice.
type Allocator interface {
	Acquire(size int) ([]byte, error)
	Release(buf []byte)
}

// HeapAllocator recycles LineCapacity buffers through a sync.Pool. Other
// sizes are allocated directly and left to the garbage collector. The
// zero value is ready to use.
type HeapAllocator struct {
	pool sync.Pool
}

// NewHeapAllocator creates a pooled heap allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

// Acquire returns a buffer with room for size bytes.
func (a *HeapAllocator) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if size == LineCapacity {
		if p, ok := a.pool.Get().(*[]byte); ok {
			return (*p)[:0], nil
		}
	}
	return make([]byte, 0, size), nil
}

// Release returns a LineCapacity buffer to the pool.
func (a *HeapAllocator) Release(buf []byte) {
	if cap(buf) != LineCapacity {
		return
	}
	buf = buf[:0]
	a.pool.Put(&buf)
}

// BoundedAllocator caps how many buffers may be outstanding at once.
// Acquire never waits: past the cap it fails with ErrAllocatorExhausted,
// which the bridge treats as an allocation failure and drops the line.
type BoundedAllocator struct {
	next  Allocator
	slots chan struct{}
}

// NewBoundedAllocator wraps next (default: a new HeapAllocator) with a
// limit of outstanding buffers. A limit of zero or less rejects every
// request.
func NewBoundedAllocator(next Allocator, limit int) *BoundedAllocator {
	if next == nil {
		next = NewHeapAllocator()
	}
	if limit < 0 {
		limit = 0
	}
	return &BoundedAllocator{
		next:  next,
		slots: make(chan struct{}, limit),
	}
}

// Acquire reserves a slot and delegates to the wrapped allocator.
func (a *BoundedAllocator) Acquire(size int) ([]byte, error) {
	select {
	case a.slots <- struct{}{}:
	default:
		return nil, ErrAllocatorExhausted
	}
	buf, err := a.next.Acquire(size)
	if err != nil {
		<-a.slots
		return nil, err
	}
	return buf, nil
}

// Release hands buf back to the wrapped allocator and frees its slot.
func (a *BoundedAllocator) Release(buf []byte) {
	a.next.Release(buf)
	<-a.slots
}

// Outstanding returns the number of buffers currently acquired.
func (a *BoundedAllocator) Outstanding() int {
	return len(a.slots)
}
