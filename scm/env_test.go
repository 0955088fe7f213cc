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

func TestEnvFindWalksChain(t *testing.T) {
	base := NewGlobalEnv()
	Define("x", Integer(1), base)
	inner := Extend("y", Integer(2), base)

	if v, ok := Find("x", inner); !ok || v != Integer(1) {
		t.Fatalf("expected to find x=1 through the chain, got %#v, %v", v, ok)
	}
	if v, ok := Find("y", inner); !ok || v != Integer(2) {
		t.Fatalf("expected to find y=2 in the head frame, got %#v, %v", v, ok)
	}
	if _, ok := Find("z", inner); ok {
		t.Fatal("z should be unbound")
	}
}

func TestEnvShadowing(t *testing.T) {
	base := NewGlobalEnv()
	Define("x", Integer(1), base)
	inner := Extend("x", Integer(2), base)
	if v, _ := Find("x", inner); v != Integer(2) {
		t.Fatalf("inner binding should shadow outer, got %#v", v)
	}
	if v, _ := Find("x", base); v != Integer(1) {
		t.Fatalf("outer binding should be untouched, got %#v", v)
	}
}

func TestModifyRewritesOwningFrame(t *testing.T) {
	base := NewGlobalEnv()
	Define("x", Integer(1), base)
	inner := Extend("y", Integer(2), base)

	if err := Modify("x", Integer(42), inner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := Find("x", base); v != Integer(42) {
		t.Fatalf("modify should rewrite the frame that owns x, got %#v", v)
	}
}

func TestModifyUnboundIsError(t *testing.T) {
	base := NewGlobalEnv()
	if err := Modify("nope", Integer(1), base); err == nil {
		t.Fatal("expected an error modifying an unbound variable")
	}
}

func TestExtendDoesNotMutateInput(t *testing.T) {
	base := NewGlobalEnv()
	Define("x", Integer(1), base)
	_ = Extend("x", Integer(2), base)
	if v, _ := Find("x", base); v != Integer(1) {
		t.Fatal("Extend must not mutate the environment it was given")
	}
}

func TestNamesCollectsWholeChain(t *testing.T) {
	base := NewGlobalEnv()
	Define("a", Integer(1), base)
	inner := Extend("b", Integer(2), base)
	names := Names(inner)
	seen := map[Symbol]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected a and b in %v", names)
	}
}
