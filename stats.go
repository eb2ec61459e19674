package fixedpool

// Stats represents pool stats.
type Stats struct {
	Allocs uint64 // Number of successful allocations.
	Frees  uint64 // Number of successful releases.
	Moves  uint64 // Number of reallocations that moved a block.

	LiveBytes    int // Total bytes in allocated blocks.
	FreeBytes    int // Total bytes in free blocks.
	ActiveBlocks int // Number of allocated blocks.
	FreeBlocks   int // Number of free blocks.
	LargestFree  int // Length of the largest free block.
}

// Reset resets stats for re-use.
func (s *Stats) Reset() {
	*s = Stats{}
}

// UpdateStats fills s with the pool's counters and current layout.
// Byte totals always sum to the pool's capacity.
func (p *Pool) UpdateStats(s *Stats) {
	p.mustBeLive()
	s.Reset()
	s.Allocs = p.allocs
	s.Frees = p.frees
	s.Moves = p.moves

	for b := p.active.Front(); b != nil; b = b.Next() {
		s.LiveBytes += b.Len
	}
	s.ActiveBlocks = p.active.Len()

	for b := p.avail.Front(); b != nil; b = b.Next() {
		s.FreeBytes += b.Len
		if b.Len > s.LargestFree {
			s.LargestFree = b.Len
		}
	}
	s.FreeBlocks = p.avail.Len()
}
