package fixedpool

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// reserveBuffer reserves the pool's backing region of capacity bytes.
//
// By default the region is reserved with unix.Mmap as anonymous virtual
// memory that is not part of the Go heap, so the GOGC never scans it and
// the pool's one-time reservation stays outside the runtime allocator.
// With onHeap set the region is a plain heap slice instead.
func reserveBuffer(capacity int, onHeap bool) ([]byte, error) {
	if onHeap {
		return make([]byte, capacity), nil
	}
	data, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot reserve %d bytes via mmap: %w", capacity, err)
	}
	return data, nil
}

// releaseBuffer returns the backing region to the operating system.
// Heap-placed buffers are left to the GC.
func (p *Pool) releaseBuffer() {
	if !p.onHeap {
		if err := unix.Munmap(p.buf); err != nil {
			p.logger.Error("failed to unmap pool buffer", "error", err)
		}
	}
	p.buf = nil
}
