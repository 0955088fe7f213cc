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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteString renders v the way the REPL echoes a result back: strings
// are quoted and escaped (§6, output contract).
func WriteString(v Value) string {
	var b strings.Builder
	format(&b, v, true)
	return b.String()
}

// DisplayString renders v the way `display` does: strings are printed
// raw, with no surrounding quotes.
func DisplayString(v Value) string {
	var b strings.Builder
	format(&b, v, false)
	return b.String()
}

// Display writes v to standard output in display style; it is the
// evaluator primitive behind `(display x)`.
func Display(v Value) {
	fmt.Fprint(os.Stdout, DisplayString(v))
}

func format(b *strings.Builder, v Value, quoteStrings bool) {
	switch t := v.(type) {
	case VoidVal:
		// nothing -- a Void result produces no output (§6).
	case NullVal:
		b.WriteString("()")
	case Boolean:
		if t {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Integer:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Rational:
		b.WriteString(strconv.FormatInt(t.Num, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(t.Den, 10))
	case Symbol:
		b.WriteString(string(t))
	case *String:
		if quoteStrings {
			b.WriteString(strconv.Quote(t.S))
		} else {
			b.WriteString(t.S)
		}
	case *Pair:
		formatPair(b, t, quoteStrings)
	case *Procedure:
		b.WriteString("#<procedure>")
	case *Primitive:
		fmt.Fprintf(b, "#<primitive:%s>", t.Name)
	case Terminate:
		b.WriteString("#<terminate>")
	default:
		fmt.Fprintf(b, "#<unknown:%T>", v)
	}
}

// formatPair renders a cons chain as "(e1 e2 ... )", collapsing the
// dotted-tail notation to ordinary list syntax whenever the spine ends
// in NullVal, and falling back to "(e1 e2 ... . tail)" otherwise.
func formatPair(b *strings.Builder, p *Pair, quoteStrings bool) {
	b.WriteByte('(')
	format(b, p.Car, quoteStrings)
	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case NullVal:
			b.WriteByte(')')
			return
		case *Pair:
			b.WriteByte(' ')
			format(b, t.Car, quoteStrings)
			cur = t.Cdr
		default:
			b.WriteString(" . ")
			format(b, cur, quoteStrings)
			b.WriteByte(')')
			return
		}
	}
}
