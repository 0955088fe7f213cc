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

import (
	"strings"

	"github.com/samber/lo"
)

func primCons(a, b Value) (Value, error) {
	return NewPair(a, b), nil
}

func primCar(v Value) (Value, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, errWrongType("car", v)
	}
	return p.Car, nil
}

func primCdr(v Value) (Value, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, errWrongType("cdr", v)
	}
	return p.Cdr, nil
}

func primSetCar(pair, v Value) (Value, error) {
	p, ok := pair.(*Pair)
	if !ok {
		return nil, errWrongType("set-car!", pair)
	}
	p.Car = v
	return VoidVal{}, nil
}

func primSetCdr(pair, v Value) (Value, error) {
	p, ok := pair.(*Pair)
	if !ok {
		return nil, errWrongType("set-cdr!", pair)
	}
	p.Cdr = v
	return VoidVal{}, nil
}

func primList(args []Value) (Value, error) {
	return ListToValue(args), nil
}

// primIsList walks the spine to the end looking for NullVal. A dotted
// (improper) chain stops at its non-pair tail and yields #f; a cyclic
// chain never reaches an end and this call diverges, which the
// evaluator does not guard against (§9, Non-goals).
func primIsList(v Value) (Value, error) {
	_, ok := ValueToList(v)
	return Boolean(ok), nil
}

func typePredicate(want func(Value) bool) func(Value) (Value, error) {
	return func(v Value) (Value, error) { return Boolean(want(v)), nil }
}

var (
	primIsBoolean = typePredicate(func(v Value) bool { _, ok := v.(Boolean); return ok })
	primIsInteger = typePredicate(func(v Value) bool { _, ok := v.(Integer); return ok })
	primIsNull    = typePredicate(func(v Value) bool { _, ok := v.(NullVal); return ok })
	primIsPair    = typePredicate(func(v Value) bool { _, ok := v.(*Pair); return ok })
	primIsSymbol  = typePredicate(func(v Value) bool { _, ok := v.(Symbol); return ok })
	primIsString  = typePredicate(func(v Value) bool { _, ok := v.(*String); return ok })
	primIsNumber  = typePredicate(isNumber)
	primIsRational = typePredicate(func(v Value) bool { _, ok := v.(Rational); return ok })
	primIsProcedure = typePredicate(isCallable)
)

func primEqP(a, b Value) (Value, error) {
	return Boolean(Eq(a, b)), nil
}

func primNot(v Value) (Value, error) {
	return Boolean(!Truthy(v)), nil
}

func primDisplay(v Value) (Value, error) {
	Display(v)
	return VoidVal{}, nil
}

// primStringAppend concatenates its arguments, which must all be
// strings. lo.EveryBy/lo.Map keep the type-check pass and the
// concatenation pass separate instead of hand-rolling an accumulator.
func primStringAppend(args []Value) (Value, error) {
	if !lo.EveryBy(args, func(v Value) bool { _, ok := v.(*String); return ok }) {
		bad, _ := lo.Find(args, func(v Value) bool { _, ok := v.(*String); return !ok })
		return nil, errWrongType("string-append", bad)
	}
	parts := lo.Map(args, func(v Value, _ int) string { return v.(*String).S })
	return NewString(strings.Join(parts, "")), nil
}

func primStringLength(v Value) (Value, error) {
	s, ok := v.(*String)
	if !ok {
		return nil, errWrongType("string-length", v)
	}
	return Integer(len(s.S)), nil
}
