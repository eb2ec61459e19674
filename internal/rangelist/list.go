// Package rangelist implements an ordered, doubly-linked list of
// non-overlapping blocks sorted ascending by offset.
//
// All neighbor rewiring is contained in this package: callers insert,
// remove and replace whole blocks and query neighbors, but never touch
// links directly. The zero value of List is an empty list ready for use.
package rangelist

import (
	"errors"
	"fmt"
)

// List is an ordered sequence of Blocks, ascending by offset.
// Blocks in a list never overlap.
type List struct {
	head *Block
	size int
}

// Len returns the number of blocks in the list.
func (l *List) Len() int {
	return l.size
}

// Front returns the block with the lowest offset, or nil if the list is empty.
func (l *List) Front() *Block {
	return l.head
}

// InsertSorted inserts b preserving ascending-offset order, scanning
// from the head. It panics if b already has list linkage, since a block
// belongs to at most one list at a time.
func (l *List) InsertSorted(b *Block) {
	if b.prev != nil || b.next != nil || l.head == b {
		panic(errors.New("rangelist: block is already linked into a list"))
	}

	// Find the first block with a higher offset than b.
	var prev *Block
	at := l.head
	for at != nil && at.Off < b.Off {
		prev = at
		at = at.next
	}
	if at != nil && at.Off == b.Off {
		panic(fmt.Errorf("rangelist: duplicate block offset %d", b.Off))
	}
	l.insertBetween(b, prev, at)
}

// Replace detaches old and links b into its exact position.
// The caller guarantees that b's offset preserves the list order,
// which holds when b covers a sub-range of old.
func (l *List) Replace(old, b *Block) {
	prev, next := old.prev, old.next
	l.Remove(old)
	l.insertBetween(b, prev, next)
}

// insertBetween links b between prev and next, either of which may be nil.
func (l *List) insertBetween(b, prev, next *Block) {
	b.prev = prev
	b.next = next
	if prev == nil {
		l.head = b
	} else {
		prev.next = b
	}
	if next != nil {
		next.prev = b
	}
	l.size++
}

// Remove detaches b from the list, relinking its neighbors, and clears
// b's linkage so it can be inserted into another list.
func (l *List) Remove(b *Block) {
	if b.prev == nil {
		if l.head != b {
			panic(errors.New("rangelist: block is not in this list"))
		}
		l.head = b.next
	} else {
		b.prev.next = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	}
	b.prev, b.next = nil, nil
	l.size--
}

// FindByOffset returns the block whose offset exactly equals off, or nil.
// An offset that falls inside a block's range does not match; only a
// range start does. The scan stops at the first block past off.
func (l *List) FindByOffset(off int) *Block {
	for b := l.head; b != nil && b.Off <= off; b = b.next {
		if b.Off == off {
			return b
		}
	}
	return nil
}
