package fixedpool

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/holmberd/fixedpool/internal/rangelist"
)

// PrintActive writes a human-readable listing of the allocated blocks
// to w, as "(offset, length)" entries in ascending offset order, e.g.
// "active: 0 [8], 12 [4]". The format is for debugging only and is not
// meant for round-trip parsing.
func (p *Pool) PrintActive(w io.Writer) {
	p.mustBeLive()
	printList(w, "active", &p.active)
}

// PrintAvailable writes a human-readable listing of the free blocks to w.
// See [Pool.PrintActive] for the format.
func (p *Pool) PrintAvailable(w io.Writer) {
	p.mustBeLive()
	printList(w, "available", &p.avail)
}

// Print writes the active listing followed by the available listing to w.
func (p *Pool) Print(w io.Writer) {
	p.PrintActive(w)
	p.PrintAvailable(w)
}

func printList(w io.Writer, name string, l *rangelist.List) {
	b := l.Front()
	if b == nil {
		fmt.Fprintf(w, "%s: none\n", name)
		return
	}
	fmt.Fprintf(w, "%s: %d [%d]", name, b.Off, b.Len)
	for b = b.Next(); b != nil; b = b.Next() {
		fmt.Fprintf(w, ", %d [%d]", b.Off, b.Len)
	}
	fmt.Fprintln(w)
}

// Fingerprint returns a hash of the pool's block layout: the (offset,
// length) sequence of the active list followed by the available list.
// Two pools with the same capacity and identical block boundaries have
// equal fingerprints, which makes layout comparisons cheap in tests and
// diagnostics. Block contents are not hashed.
func (p *Pool) Fingerprint() uint64 {
	p.mustBeLive()
	d := xxhash.New()
	hashList(d, &p.active)
	hashList(d, &p.avail)
	return d.Sum64()
}

func hashList(d *xxhash.Digest, l *rangelist.List) {
	var scratch [8]byte
	for b := l.Front(); b != nil; b = b.Next() {
		binary.LittleEndian.PutUint64(scratch[:], uint64(b.Off))
		d.Write(scratch[:])
		binary.LittleEndian.PutUint64(scratch[:], uint64(b.Len))
		d.Write(scratch[:])
	}
	// List terminator, so blocks moving between lists change the digest.
	scratch = [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	d.Write(scratch[:])
}
