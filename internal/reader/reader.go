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

// Package reader turns source text into the scm.Syntax trees the
// parser consumes. The core package deliberately treats the lexer as
// an external collaborator with a narrow contract (spec §1, §4.3); this
// is that collaborator.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cph-lab/golisp/scm"
)

// ErrIncomplete is returned by Read when the input ends in the middle
// of a list -- the caller (the REPL) uses this to know it should keep
// prompting for more lines instead of reporting a syntax error.
var ErrIncomplete = fmt.Errorf("unexpected end of input: expecting matching )")

// Reader tokenizes and reads Syntax trees out of a named source.
type Reader struct {
	source string
	runes  []rune
	pos    int
	line   int
	col    int
}

// New returns a Reader over src, tagging every position it reports
// with sourceName (typically a file path, or "<stdin>").
func New(sourceName, src string) *Reader {
	return &Reader{source: sourceName, runes: []rune(src), line: 1, col: 1}
}

// ReadAll reads every top-level datum in the input.
func ReadAll(sourceName, src string) ([]scm.Syntax, error) {
	r := New(sourceName, src)
	var out []scm.Syntax
	for {
		r.skipAtmosphere()
		if r.atEnd() {
			return out, nil
		}
		s, err := r.readDatum()
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
}

// Read reads a single top-level datum, or returns (nil, nil) at end of
// input with nothing left to read.
func (r *Reader) Read() (scm.Syntax, error) {
	r.skipAtmosphere()
	if r.atEnd() {
		return nil, nil
	}
	return r.readDatum()
}

func (r *Reader) atEnd() bool { return r.pos >= len(r.runes) }

func (r *Reader) peek() rune {
	if r.atEnd() {
		return 0
	}
	return r.runes[r.pos]
}

func (r *Reader) advance() rune {
	c := r.runes[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func (r *Reader) here() scm.Position {
	return scm.Position{Source: r.source, Line: r.line, Col: r.col}
}

func (r *Reader) skipAtmosphere() {
	for !r.atEnd() {
		c := r.peek()
		switch {
		case c == ';':
			for !r.atEnd() && r.peek() != '\n' {
				r.advance()
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			r.advance()
		default:
			return
		}
	}
}

func (r *Reader) readDatum() (scm.Syntax, error) {
	r.skipAtmosphere()
	if r.atEnd() {
		return nil, ErrIncomplete
	}
	at := r.here()
	switch c := r.peek(); {
	case c == '(':
		return r.readList(at)
	case c == ')':
		return nil, fmt.Errorf("%s: unexpected )", at)
	case c == '\'':
		r.advance()
		inner, err := r.readDatum()
		if err != nil {
			return nil, err
		}
		return scm.ListSyntax{
			Items: []scm.Syntax{
				scm.SymbolSyntax{Name: "quote", At: at},
				inner,
			},
			At: at,
		}, nil
	case c == '"':
		return r.readString(at)
	case c == '#':
		return r.readHash(at)
	default:
		return r.readAtom(at)
	}
}

func (r *Reader) readList(at scm.Position) (scm.Syntax, error) {
	r.advance() // consume '('
	var items []scm.Syntax
	for {
		r.skipAtmosphere()
		if r.atEnd() {
			return nil, ErrIncomplete
		}
		if r.peek() == ')' {
			r.advance()
			return scm.ListSyntax{Items: items, At: at}, nil
		}
		item, err := r.readDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (r *Reader) readString(at scm.Position) (scm.Syntax, error) {
	r.advance() // consume opening "
	var b strings.Builder
	for {
		if r.atEnd() {
			return nil, ErrIncomplete
		}
		c := r.advance()
		if c == '"' {
			return scm.StringSyntax{Value: b.String(), At: at}, nil
		}
		if c == '\\' {
			if r.atEnd() {
				return nil, ErrIncomplete
			}
			switch e := r.advance(); e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\':
				b.WriteRune(e)
			default:
				b.WriteRune(e)
			}
			continue
		}
		b.WriteRune(c)
	}
}

func (r *Reader) readHash(at scm.Position) (scm.Syntax, error) {
	r.advance() // consume '#'
	if r.atEnd() {
		return nil, fmt.Errorf("%s: unexpected end of input after #", at)
	}
	switch r.peek() {
	case 't':
		r.advance()
		return scm.TrueSyntax{At: at}, nil
	case 'f':
		r.advance()
		return scm.FalseSyntax{At: at}, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized # syntax", at)
	}
}

func isDelimiter(c rune) bool {
	switch c {
	case 0, '(', ')', '"', ';', ' ', '\t', '\r', '\n', '\'':
		return true
	default:
		return false
	}
}

// readAtom reads a run of non-delimiter characters and classifies it
// as a number, a rational ("n/d"), or a symbol (§3, Syntax shapes).
func (r *Reader) readAtom(at scm.Position) (scm.Syntax, error) {
	var b strings.Builder
	for !r.atEnd() && !isDelimiter(r.peek()) {
		b.WriteRune(r.advance())
	}
	text := b.String()
	if text == "" {
		return nil, fmt.Errorf("%s: empty atom", at)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return scm.NumberSyntax{Value: n, At: at}, nil
	}
	if num, den, ok := parseRationalLiteral(text); ok {
		return scm.RationalSyntax{Num: num, Den: den, At: at}, nil
	}
	return scm.SymbolSyntax{Name: text, At: at}, nil
}

// parseRationalLiteral recognizes "n/d" with d != 0, both signed
// decimal integers.
func parseRationalLiteral(text string) (num, den int64, ok bool) {
	slash := strings.IndexByte(text, '/')
	if slash <= 0 || slash == len(text)-1 {
		return 0, 0, false
	}
	n, err := strconv.ParseInt(text[:slash], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	d, err := strconv.ParseInt(text[slash+1:], 10, 64)
	if err != nil || d == 0 {
		return 0, 0, false
	}
	return n, d, true
}
