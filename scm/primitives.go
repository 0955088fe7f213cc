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

// evalUnary dispatches the UnaryOpExpr node shape (§4.3b: every kindFixed1
// primitive).
func evalUnary(op PrimitiveTag, arg Value) (Value, error) {
	switch op {
	case PrimCar:
		return primCar(arg)
	case PrimCdr:
		return primCdr(arg)
	case PrimIsList:
		return primIsList(arg)
	case PrimIsBoolean:
		return primIsBoolean(arg)
	case PrimIsInteger:
		return primIsInteger(arg)
	case PrimIsNull:
		return primIsNull(arg)
	case PrimIsPair:
		return primIsPair(arg)
	case PrimIsProcedure:
		return primIsProcedure(arg)
	case PrimIsSymbol:
		return primIsSymbol(arg)
	case PrimIsString:
		return primIsString(arg)
	case PrimIsNumber:
		return primIsNumber(arg)
	case PrimIsRational:
		return primIsRational(arg)
	case PrimDisplay:
		return primDisplay(arg)
	case PrimNot:
		return primNot(arg)
	case PrimAbs:
		return evalAbs(arg)
	case PrimStringLength:
		return primStringLength(arg)
	default:
		return nil, newError(Misc, "evalUnary: unhandled primitive %v", op)
	}
}

// evalBinary dispatches the BinaryOpExpr node shape: every kindFixed2
// primitive, plus the arithmetic/comparison families when the parser
// saw exactly two arguments (§4.3b).
func evalBinary(op PrimitiveTag, a, b Value) (Value, error) {
	switch op {
	case PrimAdd:
		return numAdd(a, b)
	case PrimSub:
		return numSub(a, b)
	case PrimMul:
		return numMul(a, b)
	case PrimDiv:
		return numDiv(a, b)
	case PrimModulo:
		return evalModulo(a, b)
	case PrimExpt:
		return evalExpt(a, b)
	case PrimLt:
		return stepLt(a, b)
	case PrimLe:
		return stepLe(a, b)
	case PrimEq:
		return stepEq(a, b)
	case PrimGe:
		return stepGe(a, b)
	case PrimGt:
		return stepGt(a, b)
	case PrimCons:
		return primCons(a, b)
	case PrimSetCar:
		return primSetCar(a, b)
	case PrimSetCdr:
		return primSetCdr(a, b)
	case PrimEqP:
		return primEqP(a, b)
	case PrimQuotient:
		return evalQuotient(a, b)
	case PrimRemainder:
		return evalRemainder(a, b)
	default:
		return nil, newError(Misc, "evalBinary: unhandled primitive %v", op)
	}
}

// evalVariadic dispatches the VariadicOpExpr node shape: the
// arithmetic/comparison families when arity isn't exactly two, plus
// the kindVariadicOnly primitives (§4.3b).
func evalVariadic(op PrimitiveTag, args []Value) (Value, error) {
	switch op {
	case PrimAdd:
		return foldArith(numAdd, args)
	case PrimSub:
		return foldArith(numSub, args)
	case PrimMul:
		return foldArith(numMul, args)
	case PrimDiv:
		return foldArith(numDiv, args)
	case PrimLt:
		return foldCompare(stepLt, args)
	case PrimLe:
		return foldCompare(stepLe, args)
	case PrimEq:
		return foldCompare(stepEq, args)
	case PrimGe:
		return foldCompare(stepGe, args)
	case PrimGt:
		return foldCompare(stepGt, args)
	case PrimList:
		return primList(args)
	case PrimStringAppend:
		return primStringAppend(args)
	default:
		return nil, newError(Misc, "evalVariadic: unhandled primitive %v", op)
	}
}

// evalNullary dispatches (void) and (exit), the only two zero-arity
// primitives.
func evalNullary(op PrimitiveTag) (Value, error) {
	switch op {
	case PrimVoid:
		return VoidVal{}, nil
	case PrimExit:
		return Terminate{}, nil
	default:
		return nil, newError(Misc, "evalNullary: unhandled primitive %v", op)
	}
}

// materializePrimitive wraps a primitive tag into a first-class
// callable Value (§4.5: a bare reference to a primitive's name that
// escapes call position, e.g. `(define f +)`, must still work as an
// ordinary procedure). MinArgs/MaxArgs come straight from the parser's
// own arity table, so a materialized primitive rejects the same call
// shapes the parser would have rejected at a literal call site.
func materializePrimitive(tag PrimitiveTag) *Primitive {
	ar := primitiveArity[tag]
	name := primitiveName[tag]
	return &Primitive{
		Name:    name,
		MinArgs: ar.min,
		MaxArgs: ar.max,
		Fn: func(args []Value) (Value, error) {
			switch ar.kind {
			case kindFixed0:
				return evalNullary(tag)
			case kindFixed1:
				return evalUnary(tag, args[0])
			case kindFixed2:
				return evalBinary(tag, args[0], args[1])
			case kindArithFold, kindCompareFold:
				if len(args) == 2 {
					return evalBinary(tag, args[0], args[1])
				}
				return evalVariadic(tag, args)
			default: // kindVariadicOnly
				return evalVariadic(tag, args)
			}
		},
	}
}
