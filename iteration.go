package generator

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// intBounds gives the default restart bound used when an iteration
// directive omits both restart and step, or omits one of them, for a
// given integral width (spec section 4.3).
type intBounds struct {
	max int64
	min int64
}

var int32Bounds = intBounds{max: math.MaxInt32, min: math.MinInt32}
var int64Bounds = intBounds{max: math.MaxInt64, min: math.MinInt64}

// resolveIntIteration computes the effective (start, restart, step,
// initial) tuple for an integral iteration directive, applying spec
// section 4.3's defaulting rules and section 3's invariants.
func resolveIntIteration(n node, raw map[string]any, bounds intBounds) (start, restart, step, initial int64, err error) {
	rawStart, ok := raw["start"]
	if !ok {
		return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.start is required")
	}
	start, err = toInt64(rawStart)
	if err != nil {
		return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.start must be an integer: %v", err)
	}

	rawRestart, hasRestart := raw["restart"]
	rawStep, hasStep := raw["step"]

	switch {
	case !hasRestart && !hasStep:
		step = 1
		restart = bounds.max
	case !hasStep:
		restart, err = toInt64(rawRestart)
		if err != nil {
			return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.restart must be an integer: %v", err)
		}
		if restart > start {
			step = 1
		} else {
			step = -1
		}
	case !hasRestart:
		step, err = toInt64(rawStep)
		if err != nil {
			return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.step must be an integer: %v", err)
		}
		if step == 0 {
			return 0, 0, 0, 0, newRangeErr(n, "iteration", "iteration.step must not be 0")
		}
		if step > 0 {
			restart = bounds.max
		} else {
			restart = bounds.min
		}
	default:
		restart, err = toInt64(rawRestart)
		if err != nil {
			return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.restart must be an integer: %v", err)
		}
		step, err = toInt64(rawStep)
		if err != nil {
			return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.step must be an integer: %v", err)
		}
	}

	initial = start
	if rawInitial, ok := raw["initial"]; ok {
		initial, err = toInt64(rawInitial)
		if err != nil {
			return 0, 0, 0, 0, newShapeErr(n, "iteration", "iteration.initial must be an integer: %v", err)
		}
	}

	if err := validateIterationBounds(n, start, restart, step); err != nil {
		return 0, 0, 0, 0, err
	}

	return start, restart, step, initial, nil
}

func validateIterationBounds(n node, start, restart, step int64) error {
	if start == restart {
		return newRangeErr(n, "iteration", "iteration.start must not equal iteration.restart")
	}
	if step == 0 {
		return newRangeErr(n, "iteration", "iteration.step must not be 0")
	}
	if restart > start && step < 0 {
		return newRangeErr(n, "iteration", "iteration.step must be positive when restart (%d) > start (%d)", restart, start)
	}
	if restart < start && step > 0 {
		return newRangeErr(n, "iteration", "iteration.step must be negative when restart (%d) < start (%d)", restart, start)
	}
	return nil
}

// resolveDecimalIteration is resolveIntIteration's float/double
// counterpart: the defaulting rules are identical, but the default
// restart bound is "largest finite positive" rather than a type maximum.
func resolveDecimalIteration(n node, raw map[string]any) (start, restart, step, initial apd.Decimal, err error) {
	// setFloat64 assigns into a named return via SetFloat64, which can only
	// fail on NaN/Inf; toFloat64 never produces those from JSON-shaped
	// directive input, but the error is still threaded through rather than
	// discarded.
	setFloat64 := func(d *apd.Decimal, f float64) bool {
		if _, e := d.SetFloat64(f); e != nil {
			err = newCoercionErr(n, "iteration", e)
			return false
		}
		return true
	}

	rawStart, ok := raw["start"]
	if !ok {
		err = newShapeErr(n, "iteration", "iteration.start is required")
		return
	}
	startF, ferr := toFloat64(rawStart)
	if ferr != nil {
		err = newShapeErr(n, "iteration", "iteration.start must be a number: %v", ferr)
		return
	}
	if !setFloat64(&start, startF) {
		return
	}

	rawRestart, hasRestart := raw["restart"]
	rawStep, hasStep := raw["step"]

	switch {
	case !hasRestart && !hasStep:
		if !setFloat64(&step, 1) || !setFloat64(&restart, math.MaxFloat64) {
			return
		}
	case !hasStep:
		restartF, ferr := toFloat64(rawRestart)
		if ferr != nil {
			err = newShapeErr(n, "iteration", "iteration.restart must be a number: %v", ferr)
			return
		}
		if !setFloat64(&restart, restartF) {
			return
		}
		if restartF > startF {
			if !setFloat64(&step, 1) {
				return
			}
		} else if !setFloat64(&step, -1) {
			return
		}
	case !hasRestart:
		stepF, ferr := toFloat64(rawStep)
		if ferr != nil {
			err = newShapeErr(n, "iteration", "iteration.step must be a number: %v", ferr)
			return
		}
		if stepF == 0 {
			err = newRangeErr(n, "iteration", "iteration.step must not be 0")
			return
		}
		if !setFloat64(&step, stepF) {
			return
		}
		if stepF > 0 {
			if !setFloat64(&restart, math.MaxFloat64) {
				return
			}
		} else if !setFloat64(&restart, -math.MaxFloat64) {
			return
		}
	default:
		restartF, ferr := toFloat64(rawRestart)
		if ferr != nil {
			err = newShapeErr(n, "iteration", "iteration.restart must be a number: %v", ferr)
			return
		}
		stepF, ferr := toFloat64(rawStep)
		if ferr != nil {
			err = newShapeErr(n, "iteration", "iteration.step must be a number: %v", ferr)
			return
		}
		if !setFloat64(&restart, restartF) || !setFloat64(&step, stepF) {
			return
		}
	}

	initial = start
	if rawInitial, ok := raw["initial"]; ok {
		initialF, ferr := toFloat64(rawInitial)
		if ferr != nil {
			err = newShapeErr(n, "iteration", "iteration.initial must be a number: %v", ferr)
			return
		}
		if !setFloat64(&initial, initialF) {
			return
		}
	}

	cmpStartRestart := start.Cmp(&restart)
	cmpStep := step.Sign()
	if cmpStartRestart == 0 {
		err = newRangeErr(n, "iteration", "iteration.start must not equal iteration.restart")
		return
	}
	if cmpStep == 0 {
		err = newRangeErr(n, "iteration", "iteration.step must not be 0")
		return
	}
	if cmpStartRestart < 0 && cmpStep < 0 {
		err = newRangeErr(n, "iteration", "iteration.step must be positive when restart > start")
		return
	}
	if cmpStartRestart > 0 && cmpStep > 0 {
		err = newRangeErr(n, "iteration", "iteration.step must be negative when restart < start")
		return
	}

	return
}

// resolveBoolIteration parses the boolean iteration directive, which only
// ever carries a required start (spec section 4.3).
func resolveBoolIteration(n node, raw map[string]any) (bool, error) {
	rawStart, ok := raw["start"]
	if !ok {
		return false, newShapeErr(n, "iteration", "iteration.start is required")
	}
	start, err := toBool(rawStart)
	if err != nil {
		return false, newShapeErr(n, "iteration", "iteration.start must be a boolean: %v", err)
	}
	return start, nil
}
