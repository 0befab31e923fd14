package generator

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// boolIterator implements spec section 4.3's boolean iterator: a single
// state initialized to start XOR (generation offset is odd); next()
// returns current then flips it.
type boolIterator struct {
	current bool
}

func newBoolIterator(start bool, offset uint64) *boolIterator {
	cur := start
	if offset%2 == 1 {
		cur = !cur
	}
	return &boolIterator{current: cur}
}

func (it *boolIterator) next() bool {
	v := it.current
	it.current = !it.current
	return v
}

// intIterator implements spec section 4.3's integral iterator. Arithmetic
// runs in math/big so K*step cannot overflow native width before the
// modulus reduces it (spec section 9).
type intIterator struct {
	start   int64
	step    *big.Int
	sign    int      // sign of step: +1 or -1
	absSpan *big.Int // |restart - start|, > 0
	current *big.Int // offset from start, same sign as step (or zero)
}

func newIntIterator(start, restart, step, initial int64, offset uint64) *intIterator {
	span := new(big.Int).Sub(big.NewInt(restart), big.NewInt(start))
	sign := 1
	if step < 0 {
		sign = -1
	}

	it := &intIterator{
		start:   start,
		step:    big.NewInt(step),
		sign:    sign,
		absSpan: new(big.Int).Abs(span),
	}

	k := new(big.Int).SetUint64(offset)
	a := new(big.Int).Mul(k, it.step)
	a.Add(a, big.NewInt(initial-start))
	it.current = signedMod(a, it.absSpan, sign)
	return it
}

func (it *intIterator) next() int64 {
	cur := new(big.Int).Add(it.current, big.NewInt(it.start))
	value := cur.Int64()

	nxt := new(big.Int).Add(it.current, it.step)
	it.current = signedMod(nxt, it.absSpan, it.sign)
	return value
}

// signedMod reduces a modulo absSpan (absSpan > 0) into [0, absSpan) and
// then, when sign is negative, mirrors the result into (-absSpan, 0] —
// this realizes spec section 4.3's "mod (restart-start), taken with the
// sign convention sign(step)".
func signedMod(a, absSpan *big.Int, sign int) *big.Int {
	w := new(big.Int).Mod(a, absSpan) // Euclidean mod: always in [0, absSpan)
	if sign < 0 && w.Sign() != 0 {
		w.Sub(w, absSpan)
	}
	return w
}

// decimalIterator implements spec section 4.3's iteration for float/double
// nodes: same fast-forward/wraparound arithmetic, carried out in exact
// rationals derived from apd.Decimal inputs.
type decimalIterator struct {
	start   *big.Rat
	step    *big.Rat
	sign    int
	absSpan *big.Rat
	current *big.Rat
}

func newDecimalIterator(start, restart, step, initial apd.Decimal, offset uint64) *decimalIterator {
	startR := decimalToRat(&start)
	restartR := decimalToRat(&restart)
	stepR := decimalToRat(&step)
	initialR := decimalToRat(&initial)

	span := new(big.Rat).Sub(restartR, startR)
	sign := 1
	if stepR.Sign() < 0 {
		sign = -1
	}
	absSpan := new(big.Rat).Abs(span)

	it := &decimalIterator{
		start:   startR,
		step:    stepR,
		sign:    sign,
		absSpan: absSpan,
	}

	k := new(big.Rat).SetInt(new(big.Int).SetUint64(offset))
	a := new(big.Rat).Mul(k, stepR)
	a.Add(a, new(big.Rat).Sub(initialR, startR))
	it.current = signedRatMod(a, absSpan, sign)
	return it
}

func (it *decimalIterator) next() *big.Rat {
	cur := new(big.Rat).Add(it.current, it.start)

	nxt := new(big.Rat).Add(it.current, it.step)
	it.current = signedRatMod(nxt, it.absSpan, it.sign)
	return cur
}

// signedRatMod is signedMod's exact-rational counterpart.
func signedRatMod(a, absSpan *big.Rat, sign int) *big.Rat {
	w := ratEuclidMod(a, absSpan)
	if sign < 0 && w.Sign() != 0 {
		w.Sub(w, absSpan)
	}
	return w
}

// ratEuclidMod computes a mod absSpan with the Euclidean convention (result
// in [0, absSpan)), for absSpan > 0, over exact rationals.
func ratEuclidMod(a, absSpan *big.Rat) *big.Rat {
	quotient := new(big.Rat).Quo(a, absSpan)
	num := quotient.Num()
	den := quotient.Denom() // always positive

	q := new(big.Int)
	q.Div(num, den) // big.Int.Div implements Euclidean division: floor for den > 0

	r := new(big.Rat).Sub(a, new(big.Rat).Mul(absSpan, new(big.Rat).SetInt(q)))
	return r
}

// stringIterator implements spec section 4.3's string iteration: drive an
// integer iterator and render each value as its decimal representation.
type stringIterator struct {
	ints *intIterator
}

func newStringIterator(start, restart, step, initial int64, offset uint64) *stringIterator {
	return &stringIterator{ints: newIntIterator(start, restart, step, initial, offset)}
}

func (it *stringIterator) next() string {
	return bigItoa(it.ints.next())
}

func bigItoa(v int64) string {
	return big.NewInt(v).String()
}
