// Package testutils provides shared invariant checkers for pool tests.
package testutils

import (
	"sort"
	"testing"
)

// Range is an (offset, length) pair describing one block.
type Range struct {
	Off, Len int
}

// CheckTiling fails the test unless the active and available ranges
// together partition [0, capacity) exactly: sorted by offset there must
// be no gaps and no overlaps, every length must be positive, and no two
// available ranges may be address-adjacent (adjacency means a missed
// coalesce).
func CheckTiling(tb testing.TB, capacity int, active, available []Range) {
	tb.Helper()

	all := make([]Range, 0, len(active)+len(available))
	all = append(all, active...)
	all = append(all, available...)
	sort.Slice(all, func(i, j int) bool { return all[i].Off < all[j].Off })

	next := 0
	for _, r := range all {
		if r.Len <= 0 {
			tb.Fatalf("expected positive block length, got block (%d, %d)", r.Off, r.Len)
		}
		if r.Off != next {
			tb.Fatalf("expected block at offset %d, got block (%d, %d): gap or overlap", next, r.Off, r.Len)
		}
		next = r.Off + r.Len
	}
	if next != capacity {
		tb.Fatalf("expected blocks to tile capacity %d, got %d bytes covered", capacity, next)
	}

	sorted := append([]Range(nil), available...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Off < sorted[j].Off })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Off+sorted[i-1].Len == sorted[i].Off {
			tb.Fatalf(
				"expected no adjacent free blocks, got (%d, %d) touching (%d, %d)",
				sorted[i-1].Off, sorted[i-1].Len, sorted[i].Off, sorted[i].Len,
			)
		}
	}
}
