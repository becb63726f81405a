// Package tourbuilder_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality already covered elsewhere.
package tourbuilder_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/linkern/matrix"
)

// startV is the canonical start vertex used across tests for normalization.
const startV = 0

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone,
// used across tourbuilder's black-box tests.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}
	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}
	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v
	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}
	return testDense{a: cp}
}

// altDense is a second, independent implementation, used to assert identical
// outcomes regardless of the concrete matrix.Matrix backing.
type altDense struct{ a [][]float64 }

var _ matrix.Matrix = altDense{}

func (m altDense) Rows() int { return len(m.a) }
func (m altDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}
	return len(m.a[0])
}
func (m altDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}
	return m.a[i][j], nil
}
func (m altDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v
	return nil
}
func (m altDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}
	return altDense{a: cp}
}

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks relative/absolute closeness of two float64 values.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	return diff <= rel*den
}

// mustFloatClose asserts closeness of two float64 values under rel/abs tolerances.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}

// round1e9 rounds to 1e-9 and compares as an integer count of nanounits,
// sidestepping float equality flakiness in test assertions.
func round1e9(x float64) int64 { return int64(math.Round(x * 1e9)) }

// clone2D deep-copies a dense row-major matrix.
func clone2D(a [][]float64) [][]float64 {
	cp := make([][]float64, len(a))
	for i := range a {
		cp[i] = append([]float64(nil), a[i]...)
	}
	return cp
}

// withEdge clones a and overwrites the symmetric pair (i,j)/(j,i) with w.
func withEdge(a [][]float64, i, j int, w float64) matrix.Matrix {
	cp := clone2D(a)
	cp[i][j] = w
	cp[j][i] = w
	return testDense{a: cp}
}

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) matrix.Matrix {
	n := len(pts)
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				a[i][j] = 0
				continue
			}
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			d := math.Hypot(dx, dy)
			a[i][j] = d
			a[j][i] = d
		}
	}
	return testDense{a: a}
}

// euclidAsym builds a directed (asymmetric) matrix: Euclidean distance + a
// directional penalty on one orientation.
func euclidAsym(pts [][2]float64, bias float64) matrix.Matrix {
	n := len(pts)
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				a[i][j] = 0
				continue
			}
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			d := math.Hypot(dx, dy)
			if i < j {
				a[i][j] = d
			} else {
				a[i][j] = d + bias
			}
		}
	}
	return testDense{a: a}
}

// normalizeOpenCycle returns an open tour (length n) if the input is a closed
// cycle (length n+1 with tour[0]==tour[n]); otherwise returns the input as-is.
func normalizeOpenCycle(tour []int) []int {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		return tour[:len(tour)-1]
	}
	return tour
}

// rotateToStart0 normalizes a tour so that it starts at vertex 0 (open form).
func rotateToStart0(tour []int) []int {
	open := normalizeOpenCycle(tour)
	pivot := -1
	for i, v := range open {
		if v == 0 {
			pivot = i
			break
		}
	}
	if pivot <= 0 {
		return open
	}
	rot := make([]int, len(open))
	for i := range open {
		rot[i] = open[(pivot+i)%len(open)]
	}
	return rot
}

// normalizeClosedToOpen rotates to start=0 and strips the closing vertex.
func normalizeClosedToOpen(tour []int) []int {
	return rotateToStart0(tour)
}

// edgesCount returns the number of undirected edges encoded in an adjacency list.
func edgesCount(adj [][]int) int {
	sum := 0
	for i := 0; i < len(adj); i++ {
		sum += len(adj[i])
	}
	return sum / 2
}

// doubleAdj duplicates every undirected edge in an adjacency list, producing
// an Eulerian multigraph from a simple graph (tree-doubling).
func doubleAdj(adj [][]int) [][]int {
	n := len(adj)
	cp := make([][]int, n)
	for u := 0; u < n; u++ {
		row := make([]int, 0, 2*len(adj[u]))
		row = append(row, adj[u]...)
		row = append(row, adj[u]...)
		cp[u] = row
	}
	return cp
}
