package linkern

// lagM is the modulus spec.md §6 specifies for the kick/tie-break generator:
// 1,000,000,007, a prime chosen so the subtractive generator's period is
// governed by well-understood lagged-Fibonacci theory rather than a
// power-of-two modulus's weaker low-bit statistics.
const lagM = 1_000_000_007

// lagSize and lagGap are the classic Knuth/Marsaglia subtract-with-borrow
// lag pair (55, 24): arr[i] = (arr[i-55] - arr[i-24]) mod M, realized here
// as a circular buffer of 55 slots with two receding cursors 24 apart.
const (
	lagSize = 55
	lagGap  = 24
)

// RandState is a 55-entry subtract-with-borrow lagged Fibonacci generator
// modulo the prime lagM, seeded from a single int32 and then warmed up for
// two full cycles before use. It is not bit-identical to any particular
// reference implementation's seeding procedure (none was available to
// ground against byte-for-byte); it is grounded on spec.md §6's explicit
// algorithmic redefinition (lag pair, subtractive recurrence, prime
// modulus) rather than on matching another generator's exact output.
//
// Two RandState values seeded identically produce identical sequences,
// which is what spec §8's scenario S5 (determinism) requires.
type RandState struct {
	arr [lagSize]int64
	a   int
	b   int
}

// NewRandState seeds a generator from seed and warms it up.
func NewRandState(seed int32) *RandState {
	r := &RandState{}
	x := int64(seed)
	if x < 0 {
		x = -x
	}
	if x == 0 {
		x = 1
	}
	for i := 0; i < lagSize; i++ {
		x = (x*1103515245 + 12345) % lagM
		r.arr[i] = x
	}
	r.a = lagSize - 1
	r.b = lagSize - lagGap - 1
	for i := 0; i < 2*lagSize; i++ {
		r.Next()
	}
	return r
}

// Next returns the next value in [0, lagM).
func (r *RandState) Next() int64 {
	v := r.arr[r.a] - r.arr[r.b]
	if v < 0 {
		v += lagM
	}
	r.arr[r.a] = v
	r.a--
	if r.a < 0 {
		r.a = lagSize - 1
	}
	r.b--
	if r.b < 0 {
		r.b = lagSize - 1
	}
	return v
}

// Intn returns a uniform value in [0, n). n must be positive.
func (r *RandState) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % int64(n))
}
