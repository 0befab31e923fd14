package generator

import (
	"math/big"
	"testing"
)

// TestIntIteratorScenario1 reproduces spec section 8's concrete scenario
// 1: start=-50, restart=0, step=47, initial=-50, offset=0 -> -50, -3.
func TestIntIteratorScenario1(t *testing.T) {
	it := newIntIterator(-50, 0, 47, -50, 0)

	if got := it.next(); got != -50 {
		t.Fatalf("first next() = %d, want -50", got)
	}
	if got := it.next(); got != -3 {
		t.Fatalf("second next() = %d, want -3", got)
	}
}

// TestIntIteratorWraparound walks a full cycle of a small negative-step
// iterator and checks it returns to its starting value exactly once per
// absSpan steps.
func TestIntIteratorWraparound(t *testing.T) {
	it := newIntIterator(10, 0, -3, 10, 0)

	var seq []int64
	for i := 0; i < 10; i++ {
		seq = append(seq, it.next())
	}

	want := []int64{10, 7, 4, 1, 8, 5, 2, 9, 6, 3}
	if len(seq) != len(want) {
		t.Fatalf("len(seq) = %d, want %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("seq[%d] = %d, want %d (full seq %v)", i, seq[i], want[i], seq)
		}
	}

	// Cycle repeats.
	if got := it.next(); got != 10 {
		t.Fatalf("11th next() = %d, want 10 (cycle restart)", got)
	}
}

// TestIntIteratorFastForwardEquivalence is spec section 8's fast-forward
// equivalence law: building with offset K and calling once equals
// building with offset 0 and calling K+1 times.
func TestIntIteratorFastForwardEquivalence(t *testing.T) {
	const start, restart, step, initial = -50, 0, 47, -50

	base := newIntIterator(start, restart, step, initial, 0)
	var baseSeq []int64
	for i := 0; i < 5; i++ {
		baseSeq = append(baseSeq, base.next())
	}

	for k := uint64(0); k < 5; k++ {
		ff := newIntIterator(start, restart, step, initial, k)
		if got := ff.next(); got != baseSeq[k] {
			t.Fatalf("offset %d first next() = %d, want %d", k, got, baseSeq[k])
		}
	}
}

// TestStringIteratorScenario3 reproduces spec section 8's scenario 3:
// start=1, restart=3, step=1 yields "1","2","1","2",...
func TestStringIteratorScenario3(t *testing.T) {
	it := newStringIterator(1, 3, 1, 1, 0)

	want := []string{"1", "2", "1", "2"}
	for i, w := range want {
		if got := it.next(); got != w {
			t.Fatalf("next() #%d = %q, want %q", i, got, w)
		}
	}
}

// TestBoolIteratorScenario5 reproduces spec section 8's scenario 5: a
// boolean iterator built with start=true and offset K yields true on
// first next() iff K is even.
func TestBoolIteratorScenario5(t *testing.T) {
	tests := []struct {
		offset uint64
		want   bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
	}
	for _, tt := range tests {
		it := newBoolIterator(true, tt.offset)
		if got := it.next(); got != tt.want {
			t.Fatalf("offset %d: next() = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestBoolIteratorFlips(t *testing.T) {
	it := newBoolIterator(false, 0)
	if v := it.next(); v != false {
		t.Fatalf("first = %v, want false", v)
	}
	if v := it.next(); v != true {
		t.Fatalf("second = %v, want true", v)
	}
	if v := it.next(); v != false {
		t.Fatalf("third = %v, want false", v)
	}
}

func TestSignedModMirrorsNegativeSign(t *testing.T) {
	tests := []struct {
		a, span int64
		sign    int
		want    int64
	}{
		{a: 5, span: 10, sign: 1, want: 5},
		{a: 15, span: 10, sign: 1, want: 5},
		{a: 5, span: 10, sign: -1, want: -5},
		{a: 0, span: 10, sign: -1, want: 0},
		{a: -3, span: 10, sign: -1, want: -3},
	}
	for _, tt := range tests {
		got := signedMod(big.NewInt(tt.a), big.NewInt(tt.span), tt.sign)
		if got.Int64() != tt.want {
			t.Fatalf("signedMod(%d,%d,%d) = %d, want %d", tt.a, tt.span, tt.sign, got.Int64(), tt.want)
		}
	}
}
