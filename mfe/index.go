package mfe

import "github.com/viennafold/turner/energyparams"

// triangularIndex maps a 1-indexed upper-triangular cell (i,j), 1<=i<=j<=n,
// onto a single flat offset. The three triangular DP matrices (C, fML,
// fM1) and the pair-type table share this layout, matching the reference
// implementation's `idx[j]+i` scheme (spec.md 4.2): `idx[j] = j*(j-1)/2`
// so that `idx[j]+i` is unique and increasing in i for fixed j.
//
// Callers must never swap the arguments: offset(i,j) != offset(j,i) in
// general, and only i<=j is a valid cell.
type triangularIndex struct {
	idx []int // idx[j] for j in [0,n]
}

func newTriangularIndex(n int) *triangularIndex {
	idx := make([]int, n+1)
	for j := 1; j <= n; j++ {
		idx[j] = j * (j - 1) / 2
	}
	return &triangularIndex{idx: idx}
}

// offset returns the flat index of cell (i,j). Requires 1<=i<=j<=n.
func (t *triangularIndex) offset(i, j int) int {
	return t.idx[j] + i
}

// size returns the number of cells a matrix built over this index needs.
func (t *triangularIndex) size() int {
	n := len(t.idx) - 1
	if n <= 0 {
		return 1
	}
	return t.idx[n] + n + 1
}

// triMatrix is a triangular-matrix-backed slice of energies, addressed
// through a shared triangularIndex. It never aliases a row as a raw
// pointer; every access goes through get/set so bounds and the
// (i<=j) invariant stay centralized in one place.
type triMatrix struct {
	index *triangularIndex
	data  []int
}

func newTriMatrix(index *triangularIndex, fill int) *triMatrix {
	data := make([]int, index.size())
	for i := range data {
		data[i] = fill
	}
	return &triMatrix{index: index, data: data}
}

func (m *triMatrix) get(i, j int) int {
	if i > j {
		return energyparams.INF
	}
	return m.data[m.index.offset(i, j)]
}

func (m *triMatrix) set(i, j, value int) {
	m.data[m.index.offset(i, j)] = value
}
