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

// asFraction views an Integer or Rational as a num/den pair with den
// always positive -- the single promotion point every arithmetic
// primitive below funnels through, so the Integer/Rational split never
// gets re-derived operator by operator (§9, Design Notes).
func asFraction(v Value) (num, den int64, ok bool) {
	switch t := v.(type) {
	case Integer:
		return int64(t), 1, true
	case Rational:
		return t.Num, t.Den, true
	default:
		return 0, 0, false
	}
}

func numAdd(a, b Value) (Value, error) {
	n1, d1, ok1 := asFraction(a)
	n2, d2, ok2 := asFraction(b)
	if !ok1 || !ok2 {
		return nil, errWrongType("+", pickNonNumber(a, b, ok1))
	}
	return NewRational(n1*d2+n2*d1, d1*d2), nil
}

func numSub(a, b Value) (Value, error) {
	n1, d1, ok1 := asFraction(a)
	n2, d2, ok2 := asFraction(b)
	if !ok1 || !ok2 {
		return nil, errWrongType("-", pickNonNumber(a, b, ok1))
	}
	return NewRational(n1*d2-n2*d1, d1*d2), nil
}

func numMul(a, b Value) (Value, error) {
	n1, d1, ok1 := asFraction(a)
	n2, d2, ok2 := asFraction(b)
	if !ok1 || !ok2 {
		return nil, errWrongType("*", pickNonNumber(a, b, ok1))
	}
	return NewRational(n1*n2, d1*d2), nil
}

func numDiv(a, b Value) (Value, error) {
	n1, d1, ok1 := asFraction(a)
	n2, d2, ok2 := asFraction(b)
	if !ok1 || !ok2 {
		return nil, errWrongType("/", pickNonNumber(a, b, ok1))
	}
	if n2 == 0 {
		return nil, newError(DivisionByZero, "/: division by zero")
	}
	return NewRational(n1*d2, d1*n2), nil
}

func pickNonNumber(a, b Value, aOK bool) Value {
	if !aOK {
		return a
	}
	return b
}

// foldArith implements the "+ - * /" left-fold (§4.5). The parser
// allows empty and unary arithmetic calls, so it is this fold that
// raises the error for the empty case; a single argument is returned
// unchanged.
func foldArith(step func(a, b Value) (Value, error), args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, newError(Misc, "arithmetic operator called with no arguments")
	}
	acc := args[0]
	if _, _, ok := asFraction(acc); !ok {
		return nil, errWrongType("arithmetic operator", acc)
	}
	for _, v := range args[1:] {
		next, err := step(acc, v)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func evalModulo(a, b Value) (Value, error) {
	ai, aok := a.(Integer)
	bi, bok := b.(Integer)
	if !aok || !bok {
		return nil, newError(WrongType, "modulo is only defined for integers")
	}
	if bi == 0 {
		return nil, newError(DivisionByZero, "modulo: division by zero")
	}
	return ai % bi, nil
}

func evalQuotient(a, b Value) (Value, error) {
	ai, aok := a.(Integer)
	bi, bok := b.(Integer)
	if !aok || !bok {
		return nil, newError(WrongType, "quotient is only defined for integers")
	}
	if bi == 0 {
		return nil, newError(DivisionByZero, "quotient: division by zero")
	}
	return ai / bi, nil
}

func evalRemainder(a, b Value) (Value, error) {
	ai, aok := a.(Integer)
	bi, bok := b.(Integer)
	if !aok || !bok {
		return nil, newError(WrongType, "remainder is only defined for integers")
	}
	if bi == 0 {
		return nil, newError(DivisionByZero, "remainder: division by zero")
	}
	return ai % bi, nil
}

// evalExpt computes base^exponent for integer bases and non-negative
// integer exponents (§4.5), raising IntegerOverflow on int64 overflow
// instead of silently wrapping.
func evalExpt(base, exponent Value) (Value, error) {
	bi, bok := base.(Integer)
	ei, eok := exponent.(Integer)
	if !bok || !eok {
		return nil, newError(WrongType, "expt is only defined for integers")
	}
	if ei < 0 {
		return nil, newError(Misc, "expt: negative exponent not supported for integers")
	}
	if bi == 0 && ei == 0 {
		return nil, newError(Misc, "expt: 0^0 is undefined")
	}
	var result int64 = 1
	b := int64(bi)
	for i := int64(0); i < int64(ei); i++ {
		next := result * b
		if b != 0 && next/b != result {
			return nil, newError(IntegerOverflow, "expt: result overflows a fixed-width integer")
		}
		result = next
	}
	return Integer(result), nil
}

func evalAbs(v Value) (Value, error) {
	switch t := v.(type) {
	case Integer:
		if t < 0 {
			return -t, nil
		}
		return t, nil
	case Rational:
		if t.Num < 0 {
			return Rational{Num: -t.Num, Den: t.Den}, nil
		}
		return t, nil
	default:
		return nil, errWrongType("abs", v)
	}
}
