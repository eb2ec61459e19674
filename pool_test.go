package fixedpool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Run("new pool is one free block", func(t *testing.T) {
		p := newTestPool(t, 64)
		assert.Equal(t, 64, p.Cap())
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, 1, p.avail.Len())
		checkPool(t, p)
	})

	t.Run("destroy is guarded by outstanding allocations", func(t *testing.T) {
		p := newTestPool(t, 4)
		off := mustAlloc(t, p, 4)

		require.False(t, p.Destroy())

		// The failed destroy left the pool fully usable.
		checkPool(t, p)
		buf, ok := p.Bytes(off)
		require.True(t, ok)
		assert.Len(t, buf, 4)

		require.True(t, p.Free(off))
		assert.True(t, p.Destroy())
	})

	t.Run("use after destroy panics", func(t *testing.T) {
		p := newTestPool(t, 4)
		require.True(t, p.Destroy())
		assert.Panics(t, func() { p.Alloc(1) })
		assert.Panics(t, func() { p.Free(0) })
		assert.Panics(t, func() { p.Destroy() })
	})

	t.Run("mmap-backed pool", func(t *testing.T) {
		p, err := New(4096)
		require.NoError(t, err)
		off := mustAlloc(t, p, 128)
		buf, ok := p.Bytes(off)
		require.True(t, ok)
		buf[0] = 0x42
		require.True(t, p.Free(off))
		assert.True(t, p.Destroy())
	})
}

func TestPreconditionPanics(t *testing.T) {
	assert.Panics(t, func() { New(0) }, "non-positive capacity")
	assert.Panics(t, func() { New(-1) }, "negative capacity")

	p := newTestPool(t, 16)
	assert.Panics(t, func() { p.Alloc(0) }, "non-positive alloc size")
	assert.Panics(t, func() { p.Realloc(0, -4) }, "non-positive realloc size")
}

func TestBytes(t *testing.T) {
	p := newTestPool(t, 16)
	a := mustAlloc(t, p, 4)
	mustAlloc(t, p, 4)

	buf, ok := p.Bytes(a)
	require.True(t, ok)
	assert.Len(t, buf, 4)
	assert.Equal(t, 4, cap(buf), "view must not reach into the neighbor block")

	_, ok = p.Bytes(2)
	assert.False(t, ok, "interior address must not match")
	_, ok = p.Bytes(8)
	assert.False(t, ok, "free space must not match")
}

func TestPrint(t *testing.T) {
	p := newTestPool(t, 16)

	var sb strings.Builder
	p.Print(&sb)
	assert.Equal(t, "active: none\navailable: 0 [16]\n", sb.String())

	a := mustAlloc(t, p, 8)
	mustAlloc(t, p, 4)
	require.True(t, p.Free(a))
	mustAlloc(t, p, 2) // Splits the hole at 0.

	sb.Reset()
	p.Print(&sb)
	assert.Equal(t, "active: 0 [2], 8 [4]\navailable: 2 [6], 12 [4]\n", sb.String())

	sb.Reset()
	p.PrintAvailable(&sb)
	assert.Equal(t, "available: 2 [6], 12 [4]\n", sb.String())
}

func TestFingerprint(t *testing.T) {
	p := newTestPool(t, 32)
	q := newTestPool(t, 32)
	assert.Equal(t, p.Fingerprint(), q.Fingerprint(), "identical layouts hash equal")

	a := mustAlloc(t, p, 8)
	assert.NotEqual(t, p.Fingerprint(), q.Fingerprint())

	mustAlloc(t, q, 8)
	assert.Equal(t, p.Fingerprint(), q.Fingerprint())

	// Freeing returns p to the seed layout, which differs from q's.
	require.True(t, p.Free(a))
	assert.NotEqual(t, p.Fingerprint(), q.Fingerprint())

	// The same (offset, length) multiset on different lists must hash
	// differently: a fully allocated pool is not a fresh pool.
	full := newTestPool(t, 32)
	mustAlloc(t, full, 32)
	fresh := newTestPool(t, 32)
	assert.NotEqual(t, full.Fingerprint(), fresh.Fingerprint())
}

func TestUpdateStats(t *testing.T) {
	p := newTestPool(t, 32)
	var s Stats

	p.UpdateStats(&s)
	assert.Equal(t, Stats{FreeBytes: 32, FreeBlocks: 1, LargestFree: 32}, s)

	a := mustAlloc(t, p, 8)
	_ = mustAlloc(t, p, 8)
	require.True(t, p.Free(a))

	p.UpdateStats(&s)
	assert.Equal(t, uint64(2), s.Allocs)
	assert.Equal(t, uint64(1), s.Frees)
	assert.Equal(t, uint64(0), s.Moves)
	assert.Equal(t, 8, s.LiveBytes)
	assert.Equal(t, 24, s.FreeBytes)
	assert.Equal(t, 1, s.ActiveBlocks)
	assert.Equal(t, 2, s.FreeBlocks)
	assert.Equal(t, 16, s.LargestFree)
	assert.Equal(t, p.Cap(), s.LiveBytes+s.FreeBytes)

	// Force a relocating realloc: c cannot grow in place past b.
	c := mustAlloc(t, p, 8) // First-fit reoccupies offset 0.
	newOff, err := p.Realloc(c, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, newOff)

	p.UpdateStats(&s)
	assert.Equal(t, uint64(1), s.Moves)
	assert.Equal(t, 24, s.LiveBytes)
	assert.Equal(t, p.Cap(), s.LiveBytes+s.FreeBytes)
}
