package rangelist

// Block describes one contiguous range of the pool buffer.
// A Block never owns memory; it is a view over [Off, Off+Len) in the
// buffer of the pool that tracks it. A Block belongs to at most one
// List at a time.
type Block struct {
	Off int // Start offset within the pool buffer, 0-based.
	Len int // Length of the range in bytes, always > 0.

	// Neighbor links, owned and rewired exclusively by List.
	prev, next *Block
}

// End returns the offset immediately after the block's last byte.
func (b *Block) End() int {
	return b.Off + b.Len
}

// Prev returns the block preceding b in its list, or nil.
func (b *Block) Prev() *Block {
	return b.prev
}

// Next returns the block following b in its list, or nil.
func (b *Block) Next() *Block {
	return b.next
}
