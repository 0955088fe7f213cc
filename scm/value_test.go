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

import "testing"

func TestNewRationalReduces(t *testing.T) {
	v := NewRational(6, 8)
	r, ok := v.(Rational)
	if !ok {
		t.Fatalf("expected Rational, got %T", v)
	}
	if r.Num != 3 || r.Den != 4 {
		t.Fatalf("expected 3/4, got %d/%d", r.Num, r.Den)
	}
}

func TestNewRationalDemotesToInteger(t *testing.T) {
	v := NewRational(4, 2)
	i, ok := v.(Integer)
	if !ok || i != 2 {
		t.Fatalf("expected Integer(2), got %#v", v)
	}
}

func TestNewRationalNormalizesSign(t *testing.T) {
	v := NewRational(3, -4)
	r, ok := v.(Rational)
	if !ok || r.Num != -3 || r.Den != 4 {
		t.Fatalf("expected -3/4, got %#v", v)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Boolean(false), false},
		{Boolean(true), true},
		{Integer(0), true},
		{NewString(""), true},
		{NullVal{}, true},
		{VoidVal{}, true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqValueTypes(t *testing.T) {
	if !Eq(Integer(3), Integer(3)) {
		t.Error("equal integers should be eq?")
	}
	if !Eq(Symbol("x"), Symbol("x")) {
		t.Error("equal symbols should be eq?")
	}
	if Eq(NewString("a"), NewString("a")) {
		t.Error("distinct string allocations should not be eq?")
	}
	s := NewString("a")
	if !Eq(s, s) {
		t.Error("same string allocation should be eq? to itself")
	}
	p := NewPair(Integer(1), NullVal{})
	if !Eq(p, p) {
		t.Error("same pair allocation should be eq? to itself")
	}
	if Eq(NewPair(Integer(1), NullVal{}), NewPair(Integer(1), NullVal{})) {
		t.Error("distinct pairs with equal contents should not be eq?")
	}
}

func TestListToValueAndBack(t *testing.T) {
	items := []Value{Integer(1), Integer(2), Integer(3)}
	v := ListToValue(items)
	back, ok := ValueToList(v)
	if !ok || len(back) != 3 {
		t.Fatalf("round trip failed: %#v", v)
	}
	for i := range items {
		if back[i] != items[i] {
			t.Errorf("index %d: got %#v, want %#v", i, back[i], items[i])
		}
	}
}

func TestValueToListRejectsImproperList(t *testing.T) {
	dotted := NewPair(Integer(1), Integer(2))
	if _, ok := ValueToList(dotted); ok {
		t.Error("improper list should not convert")
	}
}

func TestSetCarMutatesSharedIdentity(t *testing.T) {
	p := NewPair(Integer(1), NullVal{})
	alias := p
	p.Car = Integer(99)
	if alias.Car != Integer(99) {
		t.Error("set-car!-style mutation should be visible through every alias")
	}
}
