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

// Value is the tagged runtime value (§3). Unlike the teacher's
// interface{}-as-float64 tower, numbers keep an Integer/Rational split
// so rational arithmetic stays exact, and Pair is a pointer so
// set-car!/set-cdr! mutation is observable through every alias.
type Value interface {
	isValue()
}

// VoidVal is the result of constructs that carry no value (begin with
// no body, define, set!, ...).
type VoidVal struct{}

func (VoidVal) isValue() {}

// NullVal is the empty list, '().
type NullVal struct{}

func (NullVal) isValue() {}

// Boolean is #t / #f. Only Boolean(false) is falsy (§4.5, Truthiness).
type Boolean bool

func (Boolean) isValue() {}

// Integer is an exact, fixed-width integer.
type Integer int64

func (Integer) isValue() {}

// Rational is an exact fraction. Invariants enforced by NewRational:
// Den > 0, gcd(|Num|, Den) == 1, and Den != 1 (den==1 is demoted to
// Integer by the constructor, never stored here).
type Rational struct {
	Num, Den int64
}

func (Rational) isValue() {}

// NewRational builds a reduced Rational, or demotes to Integer when
// the fraction is whole. den must be non-zero; callers that might pass
// a zero denominator should check first and raise DivisionByZero.
func NewRational(num, den int64) Value {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd64(abs64(num), den); g > 1 {
		num, den = num/g, den/g
	}
	if den == 1 {
		return Integer(num)
	}
	return Rational{Num: num, Den: den}
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// String is an immutable byte string. It is a pointer type on purpose:
// eq? treats two string values with equal content but distinct
// allocations as different objects ("strings not interned", §8).
type String struct {
	S string
}

func (*String) isValue() {}

// NewString allocates a fresh, distinct String value.
func NewString(s string) *String { return &String{S: s} }

// Symbol is compared by value everywhere (eq? included): two symbols
// with the same name are the same symbol regardless of where they were
// produced, so this is a plain defined string type, not a pointer.
type Symbol string

func (Symbol) isValue() {}

// Pair is a mutable cons cell. Two Values may alias the same *Pair;
// set-car!/set-cdr! mutate in place and the change is visible through
// every alias, and eq? on pairs is pointer identity.
type Pair struct {
	Car, Cdr Value
}

func (*Pair) isValue() {}

// NewPair allocates a fresh cons cell.
func NewPair(car, cdr Value) *Pair { return &Pair{Car: car, Cdr: cdr} }

// Procedure is a closure: a parameter list, a body expression, and the
// environment captured at the lambda site. It shares Env with its
// defining scope so recursive and mutually-recursive definitions see
// each other (letrec over lambdas).
type Procedure struct {
	Params []Symbol
	Body   Expr
	Env    *Env
}

func (*Procedure) isValue() {}

// Primitive is a first-class wrapper around a built-in operator. Var
// resolution materializes one of these when a bare reference to a
// primitive name escapes application position (e.g. `(define f +)`),
// which is how primitives become ordinary callable values (§4.5).
type Primitive struct {
	Name           string
	MinArgs        int
	MaxArgs        int // -1 means unbounded
	Fn             func(args []Value) (Value, error)
}

func (*Primitive) isValue() {}

// Terminate is the sentinel produced by (exit); the driver recognizes
// it and stops the top-level loop.
type Terminate struct{}

func (Terminate) isValue() {}

// Truthy implements the truthiness rule (§4.5, §GLOSSARY): only
// Boolean(false) is false, everything else -- including 0, "", (),
// void -- is true.
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// TypeName names a Value's runtime type for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case VoidVal:
		return "void"
	case NullVal:
		return "null"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	case *String:
		return "string"
	case Symbol:
		return "symbol"
	case *Pair:
		return "pair"
	case *Procedure, *Primitive:
		return "procedure"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

func isNumber(v Value) bool {
	switch v.(type) {
	case Integer, Rational:
		return true
	default:
		return false
	}
}

func isCallable(v Value) bool {
	switch v.(type) {
	case *Procedure, *Primitive:
		return true
	default:
		return false
	}
}

// Eq implements eq? (§4.5 Equality): value-equal for Integer, Rational,
// Boolean, Symbol, Null and Void; identity for everything else.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case NullVal:
		_, ok := b.(NullVal)
		return ok
	case VoidVal:
		_, ok := b.(VoidVal)
		return ok
	case *String:
		bv, ok := b.(*String)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *Procedure:
		bv, ok := b.(*Procedure)
		return ok && av == bv
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av == bv
	case Rational:
		bv, ok := b.(Rational)
		return ok && av == bv
	default:
		return false
	}
}

// ListToValue converts a Go slice into a right-associated Pair chain
// terminated by NullVal -- used by quote's structural fold and by the
// `list` primitive.
func ListToValue(items []Value) Value {
	var tail Value = NullVal{}
	for i := len(items) - 1; i >= 0; i-- {
		tail = NewPair(items[i], tail)
	}
	return tail
}

// ValueToList walks a proper list spine into a Go slice. It returns
// ok=false if the value is not a pair chain terminated by NullVal.
func ValueToList(v Value) (items []Value, ok bool) {
	for {
		switch t := v.(type) {
		case NullVal:
			return items, true
		case *Pair:
			items = append(items, t.Car)
			v = t.Cdr
		default:
			return items, false
		}
	}
}
