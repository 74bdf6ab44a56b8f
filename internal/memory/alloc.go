// Package memory provides cache-line aligned table allocation with byte
// accounting, an optional limit and deterministic fault injection.
package memory

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// Alignment is the byte alignment of every slice returned by AllocAligned.
const Alignment = 64

// maxBytes caps a single allocation when no limit is configured.
const maxBytes = 1 << 40

// ErrExhausted is returned when an allocation would exceed the allocator's
// limit, cannot be represented, or was selected by FailAfter.
var ErrExhausted = errors.New("memory: allocation failed")

// Allocator tracks the bytes held by transform tables.
// A zero limit means unlimited. Allocator is safe for concurrent use.
type Allocator struct {
	mu     sync.Mutex
	limit  int64
	live   int64
	peak   int64
	allocs int
	failAt int
}

// Default is the allocator used when a context is built without one.
var Default = NewAllocator(0)

// NewAllocator returns an allocator that refuses to hold more than limit bytes.
func NewAllocator(limit int64) *Allocator {
	return &Allocator{limit: limit}
}

// Live returns the number of bytes currently allocated and not yet released.
func (a *Allocator) Live() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.live
}

// Peak returns the largest value Live has reached.
func (a *Allocator) Peak() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.peak
}

// Allocs returns the number of successful allocations made so far.
func (a *Allocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.allocs
}

// FailAfter makes the k-th allocation from now fail with ErrExhausted.
// k <= 0 disables fault injection.
func (a *Allocator) FailAfter(k int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if k <= 0 {
		a.failAt = 0
		return
	}

	a.failAt = a.allocs + k
}

func (a *Allocator) reserve(bytes int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failAt != 0 && a.allocs+1 == a.failAt {
		a.failAt = 0
		return fmt.Errorf("%w: injected failure at allocation %d", ErrExhausted, a.allocs+1)
	}

	if a.limit > 0 && a.live+bytes > a.limit {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrExhausted, bytes, a.live, a.limit)
	}

	a.allocs++
	a.live += bytes
	a.peak = max(a.peak, a.live)

	return nil
}

func (a *Allocator) release(bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.live -= bytes
}

// Block records one allocation so it can be returned to its allocator.
type Block struct {
	alloc   *Allocator
	size    int64
	backing []byte
}

// Size returns the number of accounted bytes in the block.
func (b *Block) Size() int64 {
	return b.size
}

// Release returns the block's bytes to the allocator. It is a no-op on an
// empty or already released block.
func (b *Block) Release() {
	if b.alloc == nil {
		return
	}

	b.alloc.release(b.size)
	b.alloc = nil
	b.backing = nil
}

// AllocAligned returns a zeroed slice of n elements whose first element is
// Alignment-aligned, together with the block that owns its memory.
// T must not contain pointers: the elements live in a byte backing array.
// A zero-length request allocates nothing and returns an empty block.
func AllocAligned[T any](a *Allocator, n int) ([]T, Block, error) {
	if n < 0 {
		return nil, Block{}, fmt.Errorf("%w: negative length %d", ErrExhausted, n)
	}

	if n == 0 {
		return nil, Block{}, nil
	}

	var zero T

	size := int64(unsafe.Sizeof(zero))
	if size == 0 || int64(n) > (maxBytes-Alignment)/size {
		return nil, Block{}, fmt.Errorf("%w: %d elements of %d bytes", ErrExhausted, n, size)
	}

	bytes := int64(n) * size
	if err := a.reserve(bytes); err != nil {
		return nil, Block{}, err
	}

	backing := make([]byte, bytes+Alignment)
	offset := 0

	if rem := int(uintptr(unsafe.Pointer(&backing[0])) % Alignment); rem != 0 {
		offset = Alignment - rem
	}

	data := unsafe.Slice((*T)(unsafe.Pointer(&backing[offset])), n)

	return data, Block{alloc: a, size: bytes, backing: backing}, nil
}
