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

// Eval walks an already-parsed Expr against env and returns its value
// (§5). Recursion follows the host call stack directly -- there is no
// trampoline here, tail calls are not optimized (§GLOSSARY, Non-goals).
func Eval(e Expr, env *Env) (Value, error) {
	switch t := e.(type) {
	case FixnumExpr:
		return Integer(t.Value), nil
	case RationalExpr:
		return NewRational(t.Num, t.Den), nil
	case StringExpr:
		return NewString(t.Value), nil
	case TrueExpr:
		return Boolean(true), nil
	case FalseExpr:
		return Boolean(false), nil
	case VarExpr:
		return evalVar(t.Name, env)
	case QuoteExpr:
		return quoteToValue(t.Datum), nil

	case *IfExpr:
		cond, err := Eval(t.Cond, env)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return Eval(t.Then, env)
		}
		return Eval(t.Else, env)

	case *CondExpr:
		return evalCond(t, env)

	case *AndExpr:
		for _, a := range t.Args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			if b, ok := v.(Boolean); ok && !bool(b) {
				return Boolean(false), nil
			}
		}
		return Boolean(true), nil

	case *OrExpr:
		for _, a := range t.Args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			if b, ok := v.(Boolean); ok && bool(b) {
				return Boolean(true), nil
			}
		}
		return Boolean(false), nil

	case *BeginExpr:
		var result Value = VoidVal{}
		for _, b := range t.Body {
			v, err := Eval(b, env)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil

	case *LambdaExpr:
		return &Procedure{Params: t.Params, Body: t.Body, Env: env}, nil

	case *ApplyExpr:
		fn, err := Eval(t.Fn, env)
		if err != nil {
			return nil, err
		}
		args := make([]Value, len(t.Args))
		for i, a := range t.Args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return Apply(fn, args)

	case *DefineExpr:
		v, err := Eval(t.Value, env)
		if err != nil {
			return nil, err
		}
		Define(t.Name, v, env)
		return VoidVal{}, nil

	case *LetExpr:
		newEnv := env
		for _, b := range t.Bindings {
			v, err := Eval(b.Init, env)
			if err != nil {
				return nil, err
			}
			newEnv = Extend(b.Name, v, newEnv)
		}
		return Eval(t.Body, newEnv)

	case *LetrecExpr:
		newEnv := env
		for _, b := range t.Bindings {
			newEnv = Extend(b.Name, VoidVal{}, newEnv)
		}
		for _, b := range t.Bindings {
			v, err := Eval(b.Init, newEnv)
			if err != nil {
				return nil, err
			}
			if err := Modify(b.Name, v, newEnv); err != nil {
				return nil, err
			}
		}
		return Eval(t.Body, newEnv)

	case *SetExpr:
		v, err := Eval(t.Value, env)
		if err != nil {
			return nil, err
		}
		if err := Modify(t.Name, v, env); err != nil {
			return nil, err
		}
		return VoidVal{}, nil

	case *UnaryOpExpr:
		arg, err := Eval(t.Arg, env)
		if err != nil {
			return nil, err
		}
		return evalUnary(t.Op, arg)

	case *BinaryOpExpr:
		left, err := Eval(t.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := Eval(t.Right, env)
		if err != nil {
			return nil, err
		}
		return evalBinary(t.Op, left, right)

	case *VariadicOpExpr:
		args := make([]Value, len(t.Args))
		for i, a := range t.Args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return evalVariadic(t.Op, args)

	case *NullaryOpExpr:
		return evalNullary(t.Op)

	default:
		return nil, newError(Misc, "Eval: unhandled expression node %T", e)
	}
}

// evalVar resolves a variable reference: an ordinary lexical lookup
// first, falling back to materializing a first-class Primitive when
// the name is a built-in operator that was never shadowed at parse
// time (§4.5, "primitives as values").
func evalVar(name Symbol, env *Env) (Value, error) {
	if v, ok := Find(name, env); ok {
		return v, nil
	}
	if tag, ok := primitiveTable[string(name)]; ok {
		return materializePrimitive(tag), nil
	}
	return nil, errUndefinedVariable(string(name))
}

func evalCond(t *CondExpr, env *Env) (Value, error) {
	for _, c := range t.Clauses {
		var test Value
		if c.IsElse {
			test = Boolean(true)
		} else {
			v, err := Eval(c.Test, env)
			if err != nil {
				return nil, err
			}
			test = v
		}
		if !Truthy(test) {
			continue
		}
		if len(c.Body) == 0 {
			return test, nil
		}
		var result Value = VoidVal{}
		for _, b := range c.Body {
			v, err := Eval(b, env)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	}
	return VoidVal{}, nil
}

// Apply invokes a callable value (§4.5). A Procedure is applied in the
// environment it closed over, extended with its own parameters -- not
// in the caller's environment.
func Apply(fn Value, args []Value) (Value, error) {
	switch p := fn.(type) {
	case *Procedure:
		if len(args) != len(p.Params) {
			return nil, errWrongArity("procedure call", len(p.Params), len(args))
		}
		callEnv := ExtendAll(p.Params, args, p.Env)
		return Eval(p.Body, callEnv)
	case *Primitive:
		if len(args) < p.MinArgs || (p.MaxArgs >= 0 && len(args) > p.MaxArgs) {
			return nil, errWrongArity(p.Name, p.MinArgs, len(args))
		}
		return p.Fn(args)
	default:
		return nil, newError(WrongType, "attempt to apply a non-procedure: %s", TypeName(fn))
	}
}
