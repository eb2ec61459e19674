package fixedpool_test

import (
	"fmt"
	"os"

	"github.com/holmberd/fixedpool"
)

func Example() {
	pool, err := fixedpool.New(16)
	if err != nil {
		panic(err)
	}

	a, _ := pool.Alloc(8)
	b, _ := pool.Alloc(4)

	data, _ := pool.Bytes(a)
	copy(data, "hello")

	pool.Free(a)
	pool.Print(os.Stdout)

	// Grows in place into the adjacent free block, keeping its offset.
	b, _ = pool.Realloc(b, 8)
	fmt.Println("b:", b)

	pool.Free(b)
	fmt.Println("destroyed:", pool.Destroy())

	// Output:
	// active: 8 [4]
	// available: 0 [8], 12 [4]
	// b: 8
	// destroyed: true
}
