package bmssp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkBlocks asserts the structural invariants: blocks non-empty, sorted,
// mutually ordered, and the size counter in sync.
func checkBlocks(t *testing.T, ds *PartialSortDS) {
	t.Helper()
	total := 0
	for bi, blk := range ds.blocks {
		require.NotEmpty(t, blk, "block %d is empty", bi)
		for i := 1; i < len(blk); i++ {
			require.False(t, less(blk[i], blk[i-1]), "block %d unsorted at %d", bi, i)
		}
		if bi > 0 {
			prev := ds.blocks[bi-1]
			require.False(t, less(blk[0], prev[len(prev)-1]), "blocks %d and %d overlap", bi-1, bi)
		}
		total += len(blk)
	}
	require.Equal(t, total, ds.size)
}

func TestPartialSortDS_BlockInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ds := NewPartialSortDS(64) // B = 4
	for i := 0; i < 500; i++ {
		ds.Insert(i, rng.Float64())
		checkBlocks(t, ds)
		for _, blk := range ds.blocks {
			require.LessOrEqual(t, len(blk), 2*ds.blockSize)
		}
		if i%50 == 49 {
			_, _, ok := ds.Pull(17)
			require.True(t, ok)
			checkBlocks(t, ds)
		}
	}
}

func TestPartialSortDS_BatchPrependChunksIntoBlocks(t *testing.T) {
	ds := NewPartialSortDS(27) // B = 3
	ds.Insert(100, 100)
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{Key: i, Value: float64(10 - i)}
	}
	ds.BatchPrepend(items)
	checkBlocks(t, ds)
	require.Len(t, ds.blocks, 5) // 3+3+3+1 prepended, then the existing block
	require.Equal(t, 11, ds.Len())
}

func TestPivotCap(t *testing.T) {
	a := &Algorithm{k: 3}
	require.Equal(t, 1, a.pivotCap(0))
	require.Equal(t, 1, a.pivotCap(5))
	require.Equal(t, 3, a.pivotCap(9))
}

func TestDeriveParams(t *testing.T) {
	k, tt, l := deriveParams(2)
	require.Equal(t, 1, k)
	require.Equal(t, 1, tt)
	require.Equal(t, 1, l)
}
