/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

// compareNum orders a and b by cross-multiplication (denominators are
// always positive, so the sign of the cross product is the sign of the
// difference without ever computing a fraction).
func compareNum(a, b Value) (int, error) {
	n1, d1, ok1 := asFraction(a)
	n2, d2, ok2 := asFraction(b)
	if !ok1 || !ok2 {
		return 0, errWrongType("comparison", pickNonNumber(a, b, ok1))
	}
	lhs := n1 * d2
	rhs := n2 * d1
	switch {
	case lhs < rhs:
		return -1, nil
	case lhs > rhs:
		return 1, nil
	default:
		return 0, nil
	}
}

type compareFn func(cmp int) bool

func evalCompareStep(fn compareFn) func(a, b Value) (Value, error) {
	return func(a, b Value) (Value, error) {
		cmp, err := compareNum(a, b)
		if err != nil {
			return nil, err
		}
		return Boolean(fn(cmp)), nil
	}
}

var (
	stepLt = evalCompareStep(func(c int) bool { return c < 0 })
	stepLe = evalCompareStep(func(c int) bool { return c <= 0 })
	stepEq = evalCompareStep(func(c int) bool { return c == 0 })
	stepGe = evalCompareStep(func(c int) bool { return c >= 0 })
	stepGt = evalCompareStep(func(c int) bool { return c > 0 })
)

// foldCompare implements the "< <= = >= >" chained-comparison fold
// (§4.5): every adjacent pair must satisfy the relation, short-circuit
// on the first pair that doesn't.
func foldCompare(step func(a, b Value) (Value, error), args []Value) (Value, error) {
	for i := 1; i < len(args); i++ {
		v, err := step(args[i-1], args[i])
		if err != nil {
			return nil, err
		}
		if !bool(v.(Boolean)) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}
