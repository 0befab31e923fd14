package generator

import (
	"math/big"
	"math/rand"

	"github.com/cockroachdb/apd/v3"
)

// decimalConfig is the parsed form of the decimal logical-type metadata
// carried on a bytes or fixed schema (spec section 4.6, 6).
type decimalConfig struct {
	precision int
	scale     int
	fixedSize int // > 0 only for fixed-backed decimals; 0 means bytes-backed
}

// decimalToRat converts an apd.Decimal into an exact big.Rat, following the
// coefficient/exponent conversion idiom in the changefeed Avro encoder
// (decimalToRat in the retrieval pack's cockroachdb source).
func decimalToRat(d *apd.Decimal) *big.Rat {
	coeff := new(big.Int).Set(&d.Coeff)
	if d.Negative {
		coeff.Neg(coeff)
	}

	r := new(big.Rat)
	if d.Exponent >= 0 {
		exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Exponent)), nil)
		r.SetFrac(new(big.Int).Mul(coeff, exp), big.NewInt(1))
	} else {
		exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.Exponent)), nil)
		r.SetFrac(coeff, exp)
	}
	return r
}

// ratToUnscaled rounds r*10^scale to the nearest integer, for encoding a
// decimal logical-type value as its scaled unscaled coefficient.
func ratToUnscaled(r *big.Rat, scale int) *big.Int {
	scaled := new(big.Rat).Mul(r, ratPow10(scale))
	return roundRatToInt(scaled)
}

func ratPow10(n int) *big.Rat {
	if n >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil))
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n)), nil)
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}

// roundRatToInt rounds half-away-from-zero, matching the teacher's
// math.Round-based rounding in generateNumber's multipleOf handling.
func roundRatToInt(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := r.Denom() // big.Rat invariant: always positive

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	if twice.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// twosComplementBytes encodes v as a two's-complement big-endian byte
// string, per spec section 3's decimal invariant. minLen pads with 0x00
// (non-negative) or 0xFF (negative) to reach at least minLen bytes, for
// fixed-backed decimals.
func twosComplementBytes(v *big.Int, minLen int) []byte {
	if v.Sign() == 0 {
		b := make([]byte, maxInt(1, minLen))
		return b
	}

	if v.Sign() > 0 {
		mag := v.Bytes()
		// Ensure the high bit of the first byte is 0 (else it would read as
		// negative); prepend a zero byte if necessary.
		if mag[0]&0x80 != 0 {
			mag = append([]byte{0x00}, mag...)
		}
		return padLeft(mag, minLen, 0x00)
	}

	// Negative: two's complement is (2^(8n) + v) for the smallest n that
	// keeps the result's sign bit set.
	mag := new(big.Int).Abs(v)
	nBytes := len(mag.Bytes())
	for {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
		enc := new(big.Int).Add(mod, v)
		b := enc.Bytes()
		b = padLeft(b, nBytes, 0xFF)
		if len(b) > 0 && b[0]&0x80 != 0 {
			return padLeft(b, minLen, 0xFF)
		}
		nBytes++
	}
}

func padLeft(b []byte, size int, fill byte) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	for i := 0; i < size-len(b); i++ {
		out[i] = fill
	}
	copy(out[size-len(b):], b)
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// decimalDefaultRange returns the default [min,max) range for range-mode
// decimal generation: +/- 10^(precision-scale), per spec section 4.6.
func decimalDefaultRange(cfg decimalConfig) (float64, float64) {
	span := powFloat10(cfg.precision - cfg.scale)
	return -span, span
}

func powFloat10(n int) float64 {
	v := 1.0
	if n >= 0 {
		for i := 0; i < n; i++ {
			v *= 10
		}
		return v
	}
	for i := 0; i < -n; i++ {
		v /= 10
	}
	return v
}

// generateDecimalRange implements spec section 4.6's range mode: draw D
// uniformly in [min,max), compute unscaled := round(D * 10^scale), encode
// two's complement big-endian.
func generateDecimalRange(r *rand.Rand, cfg decimalConfig, min, max float64) []byte {
	d := min + r.Float64()*(max-min)
	unscaled := ratToUnscaled(new(big.Rat).SetFloat64(d), cfg.scale)
	return finishDecimalBytes(unscaled, cfg)
}

// generateDecimalPrecision implements spec section 4.6's precision mode:
// accumulate 15-digit blocks until the accumulated precision reaches the
// target, trim, and randomly negate.
func generateDecimalPrecision(r *rand.Rand, cfg decimalConfig) []byte {
	acc := new(big.Int)
	digits := 0
	const blockDigits = 15
	blockMod := new(big.Int).Exp(big.NewInt(10), big.NewInt(blockDigits), nil)

	for digits < cfg.precision {
		block := new(big.Int).Rand(r, blockMod)
		acc.Mul(acc, blockMod)
		acc.Add(acc, block)
		digits += blockDigits
	}

	if digits > cfg.precision {
		trim := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-cfg.precision)), nil)
		acc.Quo(acc, trim)
	}

	if r.Intn(2) == 0 {
		acc.Neg(acc)
	}

	return finishDecimalBytes(acc, cfg)
}

func finishDecimalBytes(unscaled *big.Int, cfg decimalConfig) []byte {
	if cfg.fixedSize == 0 {
		return twosComplementBytes(unscaled, 0)
	}
	return twosComplementBytes(unscaled, cfg.fixedSize)
}

// validateFixedDecimalSize fails (per spec section 4.6) when an encoded
// decimal value would not fit the declared fixed size, rather than
// silently truncating it.
func validateFixedDecimalSize(n node, encoded []byte, fixedSize int) error {
	if len(encoded) > fixedSize {
		return newRangeErr(n, "range", "decimal value requires %d bytes but fixed size is %d", len(encoded), fixedSize)
	}
	return nil
}
