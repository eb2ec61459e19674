package fixedpool

import "github.com/holmberd/fixedpool/internal/rangelist"

// alloc carves a block of exactly size bytes out of the available list
// using first-fit: the scan starts at the lowest offset and the first
// free block with sufficient length wins.
func (p *Pool) alloc(size int) (int, error) {
	for b := p.avail.Front(); b != nil; b = b.Next() {
		if b.Len < size {
			continue
		}
		if b.Len == size {
			// Exact fit: the free block moves wholesale to the active list.
			p.avail.Remove(b)
		} else {
			// Carve the leading size bytes; the remaining tail stays free
			// at the vacated position. The tail needs no coalescing check
			// since it was already part of a maximal free region.
			tail := &rangelist.Block{Off: b.Off + size, Len: b.Len - size}
			p.avail.Replace(b, tail)
			b.Len = size
		}
		p.active.InsertSorted(b)
		return b.Off, nil
	}
	return 0, ErrNoSpace
}

// free returns the active block starting at exactly offset to the
// available list. It reports false if no such block exists.
func (p *Pool) free(offset int) bool {
	b := p.active.FindByOffset(offset)
	if b == nil {
		return false
	}
	p.active.Remove(b)
	p.insertFree(b)
	return true
}

// insertFree inserts b into the available list at its sorted position
// and coalesces it with its address-adjacent neighbors. Only the two
// immediate neighbors are considered: address-order adjacency is the
// only way two free blocks can be physically contiguous.
func (p *Pool) insertFree(b *rangelist.Block) {
	p.avail.InsertSorted(b)
	if prev := b.Prev(); prev != nil && prev.End() == b.Off {
		prev.Len += b.Len
		p.avail.Remove(b)
		b = prev
	}
	if next := b.Next(); next != nil && b.End() == next.Off {
		b.Len += next.Len
		p.avail.Remove(next)
	}
}

// realloc resizes the active block starting at exactly offset.
func (p *Pool) realloc(offset, size int) (int, error) {
	b := p.active.FindByOffset(offset)
	if b == nil {
		return 0, ErrNotFound
	}
	switch {
	case size == b.Len:
		return b.Off, nil

	case size < b.Len:
		// Shrink in place: keep the leading size bytes and hand the tail
		// to the same insertion and coalescing path used by free.
		tail := &rangelist.Block{Off: b.Off + size, Len: b.Len - size}
		b.Len = size
		p.insertFree(tail)
		return b.Off, nil
	}

	// Grow. Probe for free space starting exactly at the block's end;
	// no other free region is considered, so placement stays stable.
	need := size - b.Len
	if fb := p.avail.FindByOffset(b.End()); fb != nil && fb.Len >= need {
		if fb.Len == need {
			p.avail.Remove(fb)
		} else {
			// Consume the needed bytes from the front of the free block.
			fb.Off += need
			fb.Len -= need
		}
		b.Len = size
		return b.Off, nil
	}

	// Fall back to a fresh allocation elsewhere. Nothing is mutated until
	// the allocation has succeeded, so a failed grow leaves the original
	// block untouched.
	newOff, err := p.alloc(size)
	if err != nil {
		return 0, err
	}
	copy(p.buf[newOff:newOff+b.Len], p.buf[b.Off:b.End()])
	p.free(b.Off)
	p.moves++
	return newOff, nil
}
