package bfsdisk

import "sync"

// Bitmap is a lazily-allocated, partitioned visited-set: one bit per
// state of the domain, divided into 2^blockBits-bit blocks. A block's
// backing []uint64 is allocated on first write; blocks are never freed
// during a run.
//
// Every block has its own sync.Mutex, following core/types.go's separate
// muVert/muEdgeAdj locking split: fine-grained locks
// trade memory for reduced contention, here one lock per block instead
// of one per field.
type Bitmap struct {
	blockBits uint
	blockSize uint64 // bits per block, 1<<blockBits
	mu        []sync.Mutex
	blocks    [][]uint64
}

// NewBitmap allocates a Bitmap covering n bits, partitioned into blocks
// of 2^blockBits bits each. blockBits=0 yields a single block.
func NewBitmap(n uint64, blockBits uint) *Bitmap {
	blockSize := uint64(1) << blockBits
	numBlocks := (n + blockSize - 1) / blockSize
	if numBlocks == 0 {
		numBlocks = 1
	}

	return &Bitmap{
		blockBits: blockBits,
		blockSize: blockSize,
		mu:        make([]sync.Mutex, numBlocks),
		blocks:    make([][]uint64, numBlocks),
	}
}

func (b *Bitmap) locate(bit uint64) (block int, word int, mask uint64) {
	block = int(bit / b.blockSize)
	within := bit % b.blockSize
	word = int(within / 64)
	mask = uint64(1) << (within % 64)

	return block, word, mask
}

// TestAndSet marks bit as visited and reports whether it was already
// set. The owning block is allocated on first touch.
func (b *Bitmap) TestAndSet(bit uint64) (alreadySet bool) {
	block, word, mask := b.locate(bit)

	b.mu[block].Lock()
	defer b.mu[block].Unlock()

	if b.blocks[block] == nil {
		words := b.blockSize / 64
		if b.blockSize%64 != 0 {
			words++
		}
		b.blocks[block] = make([]uint64, words)
	}

	if b.blocks[block][word]&mask != 0 {
		return true
	}
	b.blocks[block][word] |= mask

	return false
}

// Test reports whether bit is set, without allocating its block.
func (b *Bitmap) Test(bit uint64) bool {
	block, word, mask := b.locate(bit)

	b.mu[block].Lock()
	defer b.mu[block].Unlock()

	if b.blocks[block] == nil {
		return false
	}

	return b.blocks[block][word]&mask != 0
}
