package mfe

import "testing"

func TestTriangularIndexOffsetsAreUniqueAndOrdered(t *testing.T) {
	n := 12
	idx := newTriangularIndex(n)
	seen := make(map[int]struct{})
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			off := idx.offset(i, j)
			if off < 0 || off >= idx.size() {
				t.Fatalf("offset(%d,%d)=%d out of bounds [0,%d)", i, j, off, idx.size())
			}
			if _, dup := seen[off]; dup {
				t.Fatalf("offset(%d,%d)=%d collides with a previous pair", i, j, off)
			}
			seen[off] = struct{}{}
		}
	}
}

func TestTriMatrixGetSetRoundTrip(t *testing.T) {
	idx := newTriangularIndex(8)
	m := newTriMatrix(idx, -1)
	m.set(2, 5, 42)
	if got := m.get(2, 5); got != 42 {
		t.Fatalf("get(2,5) = %d, want 42", got)
	}
	if got := m.get(1, 3); got != -1 {
		t.Fatalf("get(1,3) = %d, want default -1", got)
	}
}
