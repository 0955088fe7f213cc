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

// Black-box tests for the parser/evaluator pair, driven through the
// reader the way a real program would be -- exercising Parse and Eval
// together against the scenarios in spec.md §8.
package scm_test

import (
	"testing"

	"github.com/cph-lab/golisp/internal/reader"
	"github.com/cph-lab/golisp/scm"
)

// run evaluates every top-level form in src against a shared fresh
// global environment and returns the last result.
func run(t *testing.T, src string) scm.Value {
	t.Helper()
	forms, err := reader.ReadAll("<test>", src)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	env := scm.NewGlobalEnv()
	var result scm.Value = scm.VoidVal{}
	for _, s := range forms {
		expr, err := scm.Parse(s, env)
		if err != nil {
			t.Fatalf("parse error for %q: %v", src, err)
		}
		result, err = scm.Eval(expr, env)
		if err != nil {
			t.Fatalf("eval error for %q: %v", src, err)
		}
	}
	return result
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	forms, err := reader.ReadAll("<test>", src)
	if err != nil {
		return err
	}
	env := scm.NewGlobalEnv()
	var lastErr error
	for _, s := range forms {
		expr, err := scm.Parse(s, env)
		if err != nil {
			return err
		}
		_, lastErr = scm.Eval(expr, env)
		if lastErr != nil {
			return lastErr
		}
	}
	return nil
}

func TestArithmeticVariadic(t *testing.T) {
	if got := scm.WriteString(run(t, "(+ 1 2 3)")); got != "6" {
		t.Errorf("got %s", got)
	}
	if got := scm.WriteString(run(t, "(* 2 3 4)")); got != "24" {
		t.Errorf("got %s", got)
	}
}

func TestUnaryMinusAndDivideAreNoOps(t *testing.T) {
	if got := scm.WriteString(run(t, "(- 5)")); got != "5" {
		t.Errorf("(- 5) = %s, want 5", got)
	}
	if got := scm.WriteString(run(t, "(/ 5)")); got != "5" {
		t.Errorf("(/ 5) = %s, want 5", got)
	}
}

func TestRationalArithmetic(t *testing.T) {
	if got := scm.WriteString(run(t, "(/ 1 2)")); got != "1/2" {
		t.Errorf("got %s", got)
	}
	if got := scm.WriteString(run(t, "(+ 1/2 1/2)")); got != "1" {
		t.Errorf("exact halves should sum to the Integer 1, got %s", got)
	}
}

func TestModuloByZeroErrors(t *testing.T) {
	if err := runErr(t, "(modulo 10 0)"); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestExptZeroToZeroErrors(t *testing.T) {
	if err := runErr(t, "(expt 0 0)"); err == nil {
		t.Fatal("expected an error for 0^0")
	}
}

func TestFactorialViaRecursiveLambda(t *testing.T) {
	src := `
	(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
	(fact 5)
	`
	if got := scm.WriteString(run(t, src)); got != "120" {
		t.Errorf("(fact 5) = %s, want 120", got)
	}
}

func TestSetCarObservableThroughAlias(t *testing.T) {
	src := `
	(define p (cons 1 2))
	(define q p)
	(set-car! q 99)
	(car p)
	`
	if got := scm.WriteString(run(t, src)); got != "99" {
		t.Errorf("got %s, want 99 (mutation via alias)", got)
	}
}

func TestCondWithElse(t *testing.T) {
	src := `(cond (#f 1) (#f 2) (else 3))`
	if got := scm.WriteString(run(t, src)); got != "3" {
		t.Errorf("got %s, want 3", got)
	}
}

func TestLetShadowsIfKeyword(t *testing.T) {
	src := `(let ((if 1)) (+ if 2))`
	if got := scm.WriteString(run(t, src)); got != "3" {
		t.Errorf("got %s, want 3 (if should parse as a variable reference here)", got)
	}
}

func TestAndOrReturnBooleans(t *testing.T) {
	if got := scm.WriteString(run(t, "(and 1 2 3)")); got != "#t" {
		t.Errorf("(and 1 2 3) = %s, want #t", got)
	}
	if got := scm.WriteString(run(t, "(and 1 #f 3)")); got != "#f" {
		t.Errorf("(and 1 #f 3) = %s, want #f", got)
	}
	if got := scm.WriteString(run(t, "(or #f #f)")); got != "#f" {
		t.Errorf("(or #f #f) = %s, want #f", got)
	}
}

func TestEqSymbolVsStringVsPair(t *testing.T) {
	if got := scm.WriteString(run(t, `(eq? 'a 'a)`)); got != "#t" {
		t.Errorf("symbols with the same name should be eq?, got %s", got)
	}
	if got := scm.WriteString(run(t, `(eq? "a" "a")`)); got != "#f" {
		t.Errorf("distinct string literals should not be eq?, got %s", got)
	}
	if got := scm.WriteString(run(t, `(eq? (cons 1 2) (cons 1 2))`)); got != "#f" {
		t.Errorf("distinct pairs should not be eq?, got %s", got)
	}
}

func TestClosureSeesLaterRedefinitionInCapturedFrame(t *testing.T) {
	src := `
	(define x 1)
	(define f (lambda () x))
	(define x 2)
	(f)
	`
	if got := scm.WriteString(run(t, src)); got != "2" {
		t.Errorf("got %s, want 2 (closures see the frame, not a snapshot)", got)
	}
}

func TestMutuallyRecursiveLetrec(t *testing.T) {
	src := `
	(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	  (even? 10))
	`
	if got := scm.WriteString(run(t, src)); got != "#t" {
		t.Errorf("got %s, want #t", got)
	}
}

func TestFirstClassPrimitive(t *testing.T) {
	src := `
	(define plus +)
	(plus 1 2 3)
	`
	if got := scm.WriteString(run(t, src)); got != "6" {
		t.Errorf("got %s, want 6 (primitives must be usable as first-class values)", got)
	}
}

func TestUndefinedVariableErrors(t *testing.T) {
	if err := runErr(t, "(+ undefined-name 1)"); err == nil {
		t.Fatal("expected an undefined-variable error")
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	if got := scm.WriteString(run(t, "(quote (1 2 3))")); got != "(1 2 3)" {
		t.Errorf("got %s", got)
	}
	if got := scm.WriteString(run(t, "'(a b c)")); got != "(a b c)" {
		t.Errorf("got %s", got)
	}
}
