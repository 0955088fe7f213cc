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

// PrimitiveTag identifies a built-in applicable operator (§4.2). The
// parser consults primitiveTable to dispatch by tag instead of by
// string compare at every call site.
type PrimitiveTag int

const (
	PrimAdd PrimitiveTag = iota
	PrimSub
	PrimMul
	PrimDiv
	PrimModulo
	PrimExpt
	PrimLt
	PrimLe
	PrimEq
	PrimGe
	PrimGt
	PrimCons
	PrimCar
	PrimCdr
	PrimSetCar
	PrimSetCdr
	PrimList
	PrimIsList
	PrimIsBoolean
	PrimIsInteger
	PrimIsNull
	PrimIsPair
	PrimIsProcedure
	PrimIsSymbol
	PrimIsString
	PrimEqP
	PrimDisplay
	PrimNot
	PrimVoid
	PrimExit
	// Supplemented (§SPEC_FULL SUPPLEMENTED FEATURES): present in the
	// original's arithmetic kernel comments or natural once String
	// exists, not excluded by any Non-goal.
	PrimIsNumber
	PrimIsRational
	PrimAbs
	PrimQuotient
	PrimRemainder
	PrimStringAppend
	PrimStringLength
)

// ReservedTag identifies a special form (§4.2).
type ReservedTag int

const (
	ResIf ReservedTag = iota
	ResLambda
	ResQuote
	ResDefine
	ResBegin
	ResCond
	ResLet
	ResLetrec
	ResSet
	ResAnd
	ResOr
)

// opArity describes the parser's arity policy for a primitive tag
// (§4.3b). kind selects which Expr node shape gets emitted.
type opArity struct {
	min, max int // max == -1 means unbounded
	kind     opKind
}

type opKind int

const (
	kindFixed1    opKind = iota // unary node
	kindFixed2                  // exactly 2 -> binary node
	kindArithFold                // 2 -> binary node, any other arity (incl. 0, 1) -> variadic node, no parse-time minimum
	kindCompareFold               // requires >=2; 2 -> binary node, >2 -> variadic node
	kindVariadicOnly             // any arity (incl. 0) -> variadic node
	kindFixed0                    // exactly 0
)

var primitiveTable = map[string]PrimitiveTag{
	"+":            PrimAdd,
	"-":            PrimSub,
	"*":            PrimMul,
	"/":            PrimDiv,
	"modulo":       PrimModulo,
	"expt":         PrimExpt,
	"<":            PrimLt,
	"<=":           PrimLe,
	"=":            PrimEq,
	">=":           PrimGe,
	">":            PrimGt,
	"cons":         PrimCons,
	"car":          PrimCar,
	"cdr":          PrimCdr,
	"set-car!":     PrimSetCar,
	"set-cdr!":     PrimSetCdr,
	"list":         PrimList,
	"list?":        PrimIsList,
	"boolean?":     PrimIsBoolean,
	"integer?":     PrimIsInteger,
	"null?":        PrimIsNull,
	"pair?":        PrimIsPair,
	"procedure?":   PrimIsProcedure,
	"symbol?":      PrimIsSymbol,
	"string?":      PrimIsString,
	"eq?":          PrimEqP,
	"display":      PrimDisplay,
	"not":          PrimNot,
	"void":         PrimVoid,
	"exit":         PrimExit,
	"number?":      PrimIsNumber,
	"rational?":    PrimIsRational,
	"abs":          PrimAbs,
	"quotient":     PrimQuotient,
	"remainder":    PrimRemainder,
	"string-append": PrimStringAppend,
	"string-length": PrimStringLength,
}

var reservedTable = map[string]ReservedTag{
	"if":     ResIf,
	"lambda": ResLambda,
	"quote":  ResQuote,
	"define": ResDefine,
	"begin":  ResBegin,
	"cond":   ResCond,
	"let":    ResLet,
	"letrec": ResLetrec,
	"set!":   ResSet,
	"and":    ResAnd,
	"or":     ResOr,
}

var primitiveArity = map[PrimitiveTag]opArity{
	PrimAdd:          {0, -1, kindArithFold},
	PrimSub:          {0, -1, kindArithFold},
	PrimMul:          {0, -1, kindArithFold},
	PrimDiv:          {0, -1, kindArithFold},
	PrimModulo:       {2, 2, kindFixed2},
	PrimExpt:         {2, 2, kindFixed2},
	PrimLt:           {2, -1, kindCompareFold},
	PrimLe:           {2, -1, kindCompareFold},
	PrimEq:           {2, -1, kindCompareFold},
	PrimGe:           {2, -1, kindCompareFold},
	PrimGt:           {2, -1, kindCompareFold},
	PrimCons:         {2, 2, kindFixed2},
	PrimCar:          {1, 1, kindFixed1},
	PrimCdr:          {1, 1, kindFixed1},
	PrimSetCar:       {2, 2, kindFixed2},
	PrimSetCdr:       {2, 2, kindFixed2},
	PrimList:         {0, -1, kindVariadicOnly},
	PrimIsList:       {1, 1, kindFixed1},
	PrimIsBoolean:    {1, 1, kindFixed1},
	PrimIsInteger:    {1, 1, kindFixed1},
	PrimIsNull:       {1, 1, kindFixed1},
	PrimIsPair:       {1, 1, kindFixed1},
	PrimIsProcedure:  {1, 1, kindFixed1},
	PrimIsSymbol:     {1, 1, kindFixed1},
	PrimIsString:     {1, 1, kindFixed1},
	PrimEqP:          {2, 2, kindFixed2},
	PrimDisplay:      {1, 1, kindFixed1},
	PrimNot:          {1, 1, kindFixed1},
	PrimVoid:         {0, 0, kindFixed0},
	PrimExit:         {0, 0, kindFixed0},
	PrimIsNumber:     {1, 1, kindFixed1},
	PrimIsRational:   {1, 1, kindFixed1},
	PrimAbs:          {1, 1, kindFixed1},
	PrimQuotient:     {2, 2, kindFixed2},
	PrimRemainder:    {2, 2, kindFixed2},
	PrimStringAppend: {0, -1, kindVariadicOnly},
	PrimStringLength: {1, 1, kindFixed1},
}

// PrimitiveNames lists every built-in operator name, for REPL
// tab-completion.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitiveTable))
	for name := range primitiveTable {
		names = append(names, name)
	}
	return names
}

// ReservedWords lists every special-form keyword, for REPL
// tab-completion.
func ReservedWords() []string {
	names := make([]string, 0, len(reservedTable))
	for name := range reservedTable {
		names = append(names, name)
	}
	return names
}

// primitiveName reverses primitiveTable, used for error messages and
// for naming a materialized first-class Primitive value.
var primitiveName = func() map[PrimitiveTag]string {
	m := make(map[PrimitiveTag]string, len(primitiveTable))
	for name, tag := range primitiveTable {
		m[tag] = name
	}
	return m
}()
