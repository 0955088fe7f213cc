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
package reader

import (
	"testing"

	"github.com/cph-lab/golisp/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllAtoms(t *testing.T) {
	forms, err := ReadAll("<test>", `42 -7 1/2 "hi" sym #t #f`)
	require.NoError(t, err)
	require.Len(t, forms, 7)

	assert.Equal(t, scm.NumberSyntax{Value: 42, At: forms[0].Pos()}, forms[0])
	assert.Equal(t, scm.NumberSyntax{Value: -7, At: forms[1].Pos()}, forms[1])
	assert.Equal(t, scm.RationalSyntax{Num: 1, Den: 2, At: forms[2].Pos()}, forms[2])
	assert.Equal(t, scm.StringSyntax{Value: "hi", At: forms[3].Pos()}, forms[3])
	assert.Equal(t, scm.SymbolSyntax{Name: "sym", At: forms[4].Pos()}, forms[4])
	assert.Equal(t, scm.TrueSyntax{At: forms[5].Pos()}, forms[5])
	assert.Equal(t, scm.FalseSyntax{At: forms[6].Pos()}, forms[6])
}

func TestReadNestedList(t *testing.T) {
	forms, err := ReadAll("<test>", "(+ 1 (* 2 3))")
	require.NoError(t, err)
	require.Len(t, forms, 1)

	outer, ok := forms[0].(scm.ListSyntax)
	require.True(t, ok)
	require.Len(t, outer.Items, 3)
	inner, ok := outer.Items[2].(scm.ListSyntax)
	require.True(t, ok)
	require.Len(t, inner.Items, 3)
}

func TestQuoteSugarDesugarsToQuoteForm(t *testing.T) {
	forms, err := ReadAll("<test>", "'(a b)")
	require.NoError(t, err)
	require.Len(t, forms, 1)

	l, ok := forms[0].(scm.ListSyntax)
	require.True(t, ok)
	require.Len(t, l.Items, 2)
	head, ok := l.Items[0].(scm.SymbolSyntax)
	require.True(t, ok)
	assert.Equal(t, "quote", head.Name)
}

func TestStringEscapes(t *testing.T) {
	forms, err := ReadAll("<test>", `"a\nb\t\"c\""`)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	s, ok := forms[0].(scm.StringSyntax)
	require.True(t, ok)
	assert.Equal(t, "a\nb\t\"c\"", s.Value)
}

func TestCommentsAreIgnored(t *testing.T) {
	forms, err := ReadAll("<test>", "1 ; this is a comment\n2")
	require.NoError(t, err)
	require.Len(t, forms, 2)
}

func TestIncompleteListReportsErrIncomplete(t *testing.T) {
	_, err := ReadAll("<test>", "(+ 1 2")
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestUnmatchedCloseParenIsAnError(t *testing.T) {
	_, err := ReadAll("<test>", ")")
	assert.Error(t, err)
}
