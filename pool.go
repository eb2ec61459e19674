// Package fixedpool implements a fixed-capacity memory pool.
// It manages allocation, release and resizing of byte ranges carved out
// of one contiguous buffer reserved at creation time; the system
// allocator is never called again for data memory after the pool exists.
//
// The pool is single-threaded and non-reentrant. Concurrent calls on the
// same pool must be serialized by the caller.
package fixedpool

import (
	"errors"
	"log/slog"

	"github.com/holmberd/fixedpool/internal/rangelist"
)

var (
	// ErrNoSpace is returned when no free block is large enough to satisfy
	// a request. The pool never compacts or defragments.
	ErrNoSpace = errors.New("no free block large enough")

	// ErrNotFound is returned when an offset is not the exact start of a
	// currently allocated block.
	ErrNotFound = errors.New("offset is not an allocated block")
)

// Pool represents a fixed-capacity memory pool.
//
// Every byte offset in [0, capacity) belongs to exactly one block in
// exactly one of the two lists at all times: the active list tracks
// ranges granted to callers, the available list tracks free ranges.
type Pool struct {
	logger *slog.Logger
	buf    []byte // Backing buffer, exclusively owned by the pool.
	onHeap bool

	active rangelist.List // Granted blocks, ascending by offset.
	avail  rangelist.List // Free blocks, ascending by offset, never adjacent.

	released bool
	allocs   uint64
	frees    uint64
	moves    uint64
}

// New creates a pool with the given capacity and default config.
// The whole capacity is seeded as one free block.
// It panics if capacity is not positive.
func New(capacity int) (*Pool, error) {
	return Custom(capacity, DefaultConfig())
}

// Custom creates a pool with the given capacity and a custom config.
// It panics if capacity is not positive.
func Custom(capacity int, config Config) (*Pool, error) {
	if capacity <= 0 {
		panic(errors.New("pool capacity must be positive"))
	}
	buf, err := reserveBuffer(capacity, config.OnHeap)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		logger: config.Logger,
		buf:    buf,
		onHeap: config.OnHeap,
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.avail.InsertSorted(&rangelist.Block{Off: 0, Len: capacity})
	return p, nil
}

// Destroy releases the backing buffer and all block bookkeeping.
// It returns false if any allocations are outstanding, in which case the
// pool is left exactly as it was and remains fully usable. After a
// successful Destroy any further use of the pool panics.
func (p *Pool) Destroy() bool {
	p.mustBeLive()
	if p.active.Len() > 0 {
		return false
	}
	p.releaseBuffer()
	p.avail = rangelist.List{}
	p.released = true
	return true
}

// Alloc reserves size bytes and returns the offset of the new block.
// The first free block (in ascending offset order) large enough is used,
// regardless of how much larger it is. It returns ErrNoSpace if no free
// block can satisfy the request, and panics if size is not positive.
func (p *Pool) Alloc(size int) (int, error) {
	p.mustBeLive()
	if size <= 0 {
		panic(errors.New("alloc size must be positive"))
	}
	off, err := p.alloc(size)
	if err != nil {
		return 0, err
	}
	p.allocs++
	return off, nil
}

// Free releases the block starting at exactly offset back to the pool,
// merging it with any address-adjacent free neighbors. It returns false
// if offset is not the exact start of an allocated block.
func (p *Pool) Free(offset int) bool {
	p.mustBeLive()
	if !p.free(offset) {
		return false
	}
	p.frees++
	return true
}

// Realloc resizes the block starting at exactly offset to newSize bytes
// and returns the block's offset, which changes only when the block had
// to move. Shrinking never moves. Growing extends in place when free
// space starts exactly at the block's end; otherwise the block is moved
// to a fresh allocation, its bytes copied, and the old range freed.
//
// It returns ErrNotFound if offset is not an allocated block's start and
// ErrNoSpace if the block cannot be grown; on failure the original block
// is left completely untouched. It panics if newSize is not positive.
func (p *Pool) Realloc(offset, newSize int) (int, error) {
	p.mustBeLive()
	if newSize <= 0 {
		panic(errors.New("realloc size must be positive"))
	}
	return p.realloc(offset, newSize)
}

// Bytes returns the byte window of the allocated block starting at
// exactly offset. The slice is a view into the pool's buffer, valid
// until the block is freed, moved by Realloc, or the pool is destroyed.
// The ok result is false if offset is not an allocated block's start.
func (p *Pool) Bytes(offset int) (b []byte, ok bool) {
	p.mustBeLive()
	blk := p.active.FindByOffset(offset)
	if blk == nil {
		return nil, false
	}
	return p.buf[blk.Off:blk.End():blk.End()], true
}

// Cap returns the pool's fixed capacity in bytes.
func (p *Pool) Cap() int {
	return len(p.buf)
}

// Len returns the number of currently allocated blocks.
func (p *Pool) Len() int {
	return p.active.Len()
}

func (p *Pool) mustBeLive() {
	if p.released {
		panic(errors.New("illegal use of pool after Destroy"))
	}
}
