package bmssp

import (
	"math"
	"sort"
)

// PartialSortDS is a sequence of small blocks of (key, value) items.
// Each block is sorted by (value, key) and blocks are ordered among
// themselves: every item of block i is ≤ every item of block i+1. Pulling
// the smallest items is therefore a front-to-back walk, and no operation
// ever re-sorts more than one block.
//
// It is a scratch structure: not safe for concurrent use, not reused across
// frontiers.
type PartialSortDS struct {
	blocks    [][]Item
	blockSize int
	size      int
}

// NewPartialSortDS returns an empty structure with target block size
// B = max(1, ceil(n^(1/3))).
func NewPartialSortDS(n int) *PartialSortDS {
	return &PartialSortDS{blockSize: ceilCbrt(n)}
}

// ceilCbrt returns the smallest b ≥ 1 with b³ ≥ n, exact for perfect cubes.
func ceilCbrt(n int) int {
	if n <= 1 {
		return 1
	}
	b := max(1, int(math.Round(math.Cbrt(float64(n)))))
	for b*b*b < n {
		b++
	}
	for b > 1 && (b-1)*(b-1)*(b-1) >= n {
		b--
	}

	return b
}

// BlockSize returns the target block size B.
func (ds *PartialSortDS) BlockSize() int { return ds.blockSize }

// Len returns the number of stored items.
func (ds *PartialSortDS) Len() int { return ds.size }

// Insert stores (key, value) in the block whose value range covers value,
// or in the last block when value exceeds everything stored. A block that
// grows past 2B is split into two halves.
//
// Complexity: O(log blocks + B).
func (ds *PartialSortDS) Insert(key int, value float64) {
	it := Item{Key: key, Value: value}
	ds.size++
	if len(ds.blocks) == 0 {
		ds.blocks = append(ds.blocks, []Item{it})
		return
	}

	// first block whose last item is not smaller than it
	bi := sort.Search(len(ds.blocks), func(i int) bool {
		blk := ds.blocks[i]
		return !less(blk[len(blk)-1], it)
	})
	if bi == len(ds.blocks) {
		bi--
	}

	blk := ds.blocks[bi]
	pos := sort.Search(len(blk), func(i int) bool { return less(it, blk[i]) })
	blk = append(blk, Item{})
	copy(blk[pos+1:], blk[pos:])
	blk[pos] = it
	ds.blocks[bi] = blk

	if len(blk) > 2*ds.blockSize {
		ds.split(bi)
	}
}

// split halves block bi in place.
func (ds *PartialSortDS) split(bi int) {
	blk := ds.blocks[bi]
	mid := len(blk) / 2
	lo := make([]Item, mid, ds.blockSize*2)
	copy(lo, blk[:mid])
	hi := make([]Item, len(blk)-mid, ds.blockSize*2)
	copy(hi, blk[mid:])

	ds.blocks = append(ds.blocks, nil)
	copy(ds.blocks[bi+2:], ds.blocks[bi+1:])
	ds.blocks[bi] = lo
	ds.blocks[bi+1] = hi
}

// BatchPrepend adds items known to be no larger than anything stored.
// They are sorted and placed in front as blocks of at most B items. If the
// batch turns out to overlap the current minimum, items are inserted one by
// one instead so the block ordering still holds.
func (ds *PartialSortDS) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}
	batch := make([]Item, len(items))
	copy(batch, items)
	sort.Slice(batch, func(i, j int) bool { return less(batch[i], batch[j]) })

	if len(ds.blocks) > 0 && less(ds.blocks[0][0], batch[len(batch)-1]) {
		for _, it := range batch {
			ds.Insert(it.Key, it.Value)
		}
		return
	}

	front := make([][]Item, 0, (len(batch)+ds.blockSize-1)/ds.blockSize+len(ds.blocks))
	for lo := 0; lo < len(batch); lo += ds.blockSize {
		hi := min(lo+ds.blockSize, len(batch))
		front = append(front, batch[lo:hi:hi])
	}
	ds.blocks = append(front, ds.blocks...)
	ds.size += len(batch)
}

// Pull removes up to count smallest items and returns their keys in
// ascending value order together with the value of the last removed item.
// ok is false when nothing was removed. Exhausted blocks are discarded.
func (ds *PartialSortDS) Pull(count int) (keys []int, boundary float64, ok bool) {
	if count <= 0 || ds.size == 0 {
		return nil, 0, false
	}
	keys = make([]int, 0, min(count, ds.size))

	drop := 0
	for bi := range ds.blocks {
		blk := ds.blocks[bi]
		take := min(count-len(keys), len(blk))
		for _, it := range blk[:take] {
			keys = append(keys, it.Key)
			boundary = it.Value
		}
		ds.blocks[bi] = blk[take:]
		if len(ds.blocks[bi]) == 0 {
			drop++
		}
		if len(keys) == count {
			break
		}
	}
	ds.blocks = ds.blocks[drop:]
	ds.size -= len(keys)

	return keys, boundary, true
}

// less orders items by value, then key.
func less(x, y Item) bool {
	if x.Value == y.Value {
		return x.Key < y.Key
	}
	return x.Value < y.Value
}
