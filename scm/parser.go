/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// placeholder is the opaque value the parser binds newly-introduced
// names to while parsing the forms that come after them. Its only job
// is to make Bound(name, env) report true during parsing, so that
// e.g. `(let ((if 1)) (+ if 2))` parses the inner `if` as a variable
// reference instead of the conditional keyword (§4.3, "This
// placeholder rule is essential").
type placeholder struct{}

func (placeholder) isValue() {}

var parsePlaceholder Value = placeholder{}

// bindPlaceholders extends env with name -> parsePlaceholder for every
// name, one frame per name (so later names can shadow earlier ones,
// matching the chain semantics Extend already provides elsewhere).
func bindPlaceholders(names []Symbol, env *Env) *Env {
	for _, n := range names {
		env = Extend(n, parsePlaceholder, env)
	}
	return env
}

// Parse translates a Syntax tree into an Expr against the parse-time
// environment env (§4.3). env is read, and locally extended with
// placeholders for forms that introduce bindings, but never mutated.
func Parse(s Syntax, env *Env) (Expr, error) {
	switch t := s.(type) {
	case NumberSyntax:
		return FixnumExpr{Value: t.Value}, nil
	case RationalSyntax:
		return RationalExpr{Num: t.Num, Den: t.Den}, nil
	case StringSyntax:
		return StringExpr{Value: t.Value}, nil
	case TrueSyntax:
		return TrueExpr{}, nil
	case FalseSyntax:
		return FalseExpr{}, nil
	case SymbolSyntax:
		return VarExpr{Name: Symbol(t.Name)}, nil
	case ListSyntax:
		return parseList(t, env)
	default:
		return nil, newError(SyntaxError, "%s: unrecognized syntax", s.Pos())
	}
}

func parseList(l ListSyntax, env *Env) (Expr, error) {
	if len(l.Items) == 0 {
		// Rule 1: empty list -> Quote(empty list syntax).
		return QuoteExpr{Datum: l}, nil
	}

	head := l.Items[0]
	sym, headIsSymbol := head.(SymbolSyntax)
	if !headIsSymbol {
		// Rule 2: non-symbol head -> ordinary application.
		return parseApply(head, l.Items[1:], env)
	}

	op := Symbol(sym.Name)
	if Bound(op, env) {
		// Rule 3a: shadowed by a binding in scope -> ordinary call,
		// even if op names a primitive or a reserved word.
		return parseApply(head, l.Items[1:], env)
	}
	if tag, ok := primitiveTable[string(op)]; ok {
		return parsePrimitive(tag, string(op), l, env)
	}
	if tag, ok := reservedTable[string(op)]; ok {
		return parseReserved(tag, l, env)
	}
	// Rule 3d: plain call, resolved at evaluation time.
	return parseApply(head, l.Items[1:], env)
}

func parseApply(head Syntax, rest []Syntax, env *Env) (Expr, error) {
	fn, err := Parse(head, env)
	if err != nil {
		return nil, err
	}
	args, err := parseAll(rest, env)
	if err != nil {
		return nil, err
	}
	return &ApplyExpr{Fn: fn, Args: args}, nil
}

func parseAll(items []Syntax, env *Env) ([]Expr, error) {
	out := make([]Expr, len(items))
	for i, it := range items {
		e, err := Parse(it, env)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parsePrimitive(tag PrimitiveTag, name string, l ListSyntax, env *Env) (Expr, error) {
	rands := l.Items[1:]
	ar := primitiveArity[tag]
	n := len(rands)

	checkFixed := func(want int) error {
		if n != want {
			return newError(SyntaxError, "%s: %s expects exactly %d argument(s), got %d", l.Pos(), name, want, n)
		}
		return nil
	}

	switch ar.kind {
	case kindFixed0:
		if err := checkFixed(0); err != nil {
			return nil, err
		}
		return &NullaryOpExpr{Op: tag}, nil
	case kindFixed1:
		if err := checkFixed(1); err != nil {
			return nil, err
		}
		arg, err := Parse(rands[0], env)
		if err != nil {
			return nil, err
		}
		return &UnaryOpExpr{Op: tag, Arg: arg}, nil
	case kindFixed2:
		if err := checkFixed(2); err != nil {
			return nil, err
		}
		left, err := Parse(rands[0], env)
		if err != nil {
			return nil, err
		}
		right, err := Parse(rands[1], env)
		if err != nil {
			return nil, err
		}
		return &BinaryOpExpr{Op: tag, Left: left, Right: right}, nil
	case kindCompareFold:
		if n < 2 {
			return nil, newError(SyntaxError, "%s: %s expects at least 2 arguments, got %d", l.Pos(), name, n)
		}
		return foldOrVariadic(tag, rands, env)
	case kindArithFold:
		return foldOrVariadic(tag, rands, env)
	case kindVariadicOnly:
		args, err := parseAll(rands, env)
		if err != nil {
			return nil, err
		}
		return &VariadicOpExpr{Op: tag, Args: args}, nil
	default:
		return nil, newError(SyntaxError, "%s: unhandled primitive arity kind for %s", l.Pos(), name)
	}
}

// foldOrVariadic implements "2 args -> binary node, else -> variadic
// node" (§4.3b), shared by the arithmetic and comparison families.
func foldOrVariadic(tag PrimitiveTag, rands []Syntax, env *Env) (Expr, error) {
	if len(rands) == 2 {
		left, err := Parse(rands[0], env)
		if err != nil {
			return nil, err
		}
		right, err := Parse(rands[1], env)
		if err != nil {
			return nil, err
		}
		return &BinaryOpExpr{Op: tag, Left: left, Right: right}, nil
	}
	args, err := parseAll(rands, env)
	if err != nil {
		return nil, err
	}
	return &VariadicOpExpr{Op: tag, Args: args}, nil
}

func parseReserved(tag ReservedTag, l ListSyntax, env *Env) (Expr, error) {
	rands := l.Items[1:]
	switch tag {
	case ResIf:
		if len(rands) != 3 {
			return nil, newError(SyntaxError, "%s: if expects exactly 3 sub-expressions, got %d", l.Pos(), len(rands))
		}
		c, err := Parse(rands[0], env)
		if err != nil {
			return nil, err
		}
		then, err := Parse(rands[1], env)
		if err != nil {
			return nil, err
		}
		els, err := Parse(rands[2], env)
		if err != nil {
			return nil, err
		}
		return &IfExpr{Cond: c, Then: then, Else: els}, nil

	case ResLambda:
		return parseLambda(l, rands, env)

	case ResQuote:
		if len(rands) != 1 {
			return nil, newError(SyntaxError, "%s: quote expects exactly 1 argument, got %d", l.Pos(), len(rands))
		}
		return QuoteExpr{Datum: rands[0]}, nil

	case ResDefine:
		return parseDefine(l, rands, env)

	case ResBegin:
		body, err := parseAll(rands, env)
		if err != nil {
			return nil, err
		}
		return &BeginExpr{Body: body}, nil

	case ResCond:
		return parseCond(l, rands, env)

	case ResLet:
		return parseLet(l, rands, env, false)

	case ResLetrec:
		return parseLet(l, rands, env, true)

	case ResSet:
		if len(rands) != 2 {
			return nil, newError(SyntaxError, "%s: set! expects exactly 2 arguments, got %d", l.Pos(), len(rands))
		}
		name, ok := rands[0].(SymbolSyntax)
		if !ok {
			return nil, newError(SyntaxError, "%s: set! expects a symbol as its first argument", l.Pos())
		}
		val, err := Parse(rands[1], env)
		if err != nil {
			return nil, err
		}
		return &SetExpr{Name: Symbol(name.Name), Value: val}, nil

	case ResAnd:
		args, err := parseAll(rands, env)
		if err != nil {
			return nil, err
		}
		return &AndExpr{Args: args}, nil

	case ResOr:
		args, err := parseAll(rands, env)
		if err != nil {
			return nil, err
		}
		return &OrExpr{Args: args}, nil

	default:
		return nil, newError(SyntaxError, "%s: unhandled special form", l.Pos())
	}
}

func parseLambda(l ListSyntax, rands []Syntax, env *Env) (Expr, error) {
	if len(rands) < 2 {
		return nil, newError(SyntaxError, "%s: lambda expects a parameter list and at least one body expression", l.Pos())
	}
	paramList, ok := rands[0].(ListSyntax)
	if !ok {
		return nil, newError(SyntaxError, "%s: lambda's first argument must be a parameter list", l.Pos())
	}
	params := make([]Symbol, len(paramList.Items))
	for i, p := range paramList.Items {
		ps, ok := p.(SymbolSyntax)
		if !ok {
			return nil, newError(SyntaxError, "%s: lambda parameters must all be symbols", paramList.Pos())
		}
		params[i] = Symbol(ps.Name)
	}
	bodyEnv := bindPlaceholders(params, env)
	body, err := parseBody(rands[1:], bodyEnv)
	if err != nil {
		return nil, err
	}
	return &LambdaExpr{Params: params, Body: body}, nil
}

// parseBody parses a sequence of body expressions, wrapping it in
// Begin unless there is exactly one (§4.4).
func parseBody(items []Syntax, env *Env) (Expr, error) {
	exprs, err := parseAll(items, env)
	if err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &BeginExpr{Body: exprs}, nil
}

func parseDefine(l ListSyntax, rands []Syntax, env *Env) (Expr, error) {
	if len(rands) < 2 {
		return nil, newError(SyntaxError, "%s: define expects at least 2 arguments", l.Pos())
	}
	switch head := rands[0].(type) {
	case SymbolSyntax:
		if len(rands) != 2 {
			return nil, newError(SyntaxError, "%s: (define name expr) expects exactly one value expression", l.Pos())
		}
		val, err := Parse(rands[1], env)
		if err != nil {
			return nil, err
		}
		return &DefineExpr{Name: Symbol(head.Name), Value: val}, nil
	case ListSyntax:
		// (define (fname p1 ... pk) body...)
		if len(head.Items) == 0 {
			return nil, newError(SyntaxError, "%s: define's function header must name a function", l.Pos())
		}
		fnameSyn, ok := head.Items[0].(SymbolSyntax)
		if !ok {
			return nil, newError(SyntaxError, "%s: define's function name must be a symbol", l.Pos())
		}
		params := make([]Symbol, len(head.Items)-1)
		for i, p := range head.Items[1:] {
			ps, ok := p.(SymbolSyntax)
			if !ok {
				return nil, newError(SyntaxError, "%s: define's parameters must all be symbols", head.Pos())
			}
			params[i] = Symbol(ps.Name)
		}
		bodyEnv := bindPlaceholders(params, env)
		body, err := parseBody(rands[1:], bodyEnv)
		if err != nil {
			return nil, err
		}
		return &DefineExpr{Name: Symbol(fnameSyn.Name), Value: &LambdaExpr{Params: params, Body: body}}, nil
	default:
		return nil, newError(SyntaxError, "%s: define's first argument must be a name or a function header", l.Pos())
	}
}

func parseCond(l ListSyntax, rands []Syntax, env *Env) (Expr, error) {
	clauses := make([]CondClause, len(rands))
	for i, c := range rands {
		clauseList, ok := c.(ListSyntax)
		if !ok || len(clauseList.Items) == 0 {
			return nil, newError(SyntaxError, "%s: cond clauses must be non-empty lists", l.Pos())
		}
		isElse := false
		if s, ok := clauseList.Items[0].(SymbolSyntax); ok && s.Name == "else" {
			isElse = true
		}
		parsed, err := parseAll(clauseList.Items, env)
		if err != nil {
			return nil, err
		}
		clauses[i] = CondClause{Test: parsed[0], Body: parsed[1:], IsElse: isElse}
	}
	return &CondExpr{Clauses: clauses}, nil
}

func parseBindingList(l ListSyntax, rands []Syntax) (names []Symbol, inits []ListSyntax, err error) {
	if len(rands) < 2 {
		return nil, nil, newError(SyntaxError, "%s: let/letrec expects a binding list and at least one body expression", l.Pos())
	}
	bindingList, ok := rands[0].(ListSyntax)
	if !ok {
		return nil, nil, newError(SyntaxError, "%s: let/letrec's first argument must be a binding list", l.Pos())
	}
	names = make([]Symbol, len(bindingList.Items))
	inits = make([]ListSyntax, len(bindingList.Items))
	for i, b := range bindingList.Items {
		bl, ok := b.(ListSyntax)
		if !ok || len(bl.Items) != 2 {
			return nil, nil, newError(SyntaxError, "%s: each binding must be (name expr)", bindingList.Pos())
		}
		nameSyn, ok := bl.Items[0].(SymbolSyntax)
		if !ok {
			return nil, nil, newError(SyntaxError, "%s: binding name must be a symbol", bl.Pos())
		}
		names[i] = Symbol(nameSyn.Name)
		inits[i] = bl
	}
	return names, inits, nil
}

func parseLet(l ListSyntax, rands []Syntax, env *Env, recursive bool) (Expr, error) {
	names, inits, err := parseBindingList(l, rands)
	if err != nil {
		return nil, err
	}

	if recursive {
		// letrec: bind all names to placeholders first, then parse
		// every init and the body inside that augmented environment.
		innerEnv := bindPlaceholders(names, env)
		bindings := make([]LetBinding, len(names))
		for i, initList := range inits {
			initExpr, err := Parse(initList.Items[1], innerEnv)
			if err != nil {
				return nil, err
			}
			bindings[i] = LetBinding{Name: names[i], Init: initExpr}
		}
		body, err := parseBody(rands[1:], innerEnv)
		if err != nil {
			return nil, err
		}
		return &LetrecExpr{Bindings: bindings, Body: body}, nil
	}

	// let: rhs expressions see the outer env; the body sees the outer
	// env augmented with all the new names.
	bindings := make([]LetBinding, len(names))
	for i, initList := range inits {
		initExpr, err := Parse(initList.Items[1], env)
		if err != nil {
			return nil, err
		}
		bindings[i] = LetBinding{Name: names[i], Init: initExpr}
	}
	bodyEnv := bindPlaceholders(names, env)
	body, err := parseBody(rands[1:], bodyEnv)
	if err != nil {
		return nil, err
	}
	return &LetExpr{Bindings: bindings, Body: body}, nil
}
