package lambda

import "strings"

// Format renders a term as textual Lambda-Calculus syntax: `λx.e` for
// abstractions with right-growing bodies left bare, applications
// parenthesized with left-associated chains flattened to `(e1 e2 e3)`, and
// named combinators as bare names.
func Format(t Term) string {
	p := printer{}
	p.visit(t)
	return p.sb.String()
}

// FormatExpanded renders a term with every named combinator replaced by its
// definition, producing a formula in the pure calculus.
func FormatExpanded(t Term) string {
	p := printer{expand: true}
	p.visit(t)
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	expand bool
}

func (p *printer) visit(t Term) {
	switch v := t.(type) {
	case *Var:
		p.sb.WriteString(v.Name)
	case *Named:
		if p.expand {
			p.visit(v.Def)
		} else {
			p.sb.WriteString(v.Name)
		}
	case *Abs:
		p.sb.WriteString("λ")
		p.sb.WriteString(v.Param)
		p.sb.WriteString(".")
		p.visit(v.Body)
	case *App:
		p.sb.WriteByte('(')
		p.spine(v)
		p.sb.WriteByte(')')
	}
}

// spine flattens the left spine of an application chain so `((f a) b)`
// prints as `(f a b)`.
func (p *printer) spine(a *App) {
	if fn, ok := p.deref(a.Fn).(*App); ok {
		p.spine(fn)
	} else {
		p.operand(a.Fn)
	}

	p.sb.WriteByte(' ')
	p.operand(a.Arg)
}

// operand prints a term in an application position.  Abstractions get
// parentheses there so their bodies don't swallow the rest of the chain.
func (p *printer) operand(t Term) {
	if _, ok := p.deref(t).(*Abs); ok {
		p.sb.WriteByte('(')
		p.visit(t)
		p.sb.WriteByte(')')
		return
	}

	p.visit(t)
}

// deref resolves through named combinators when expanding, so parenthesizing
// decisions see the shape of the definition.
func (p *printer) deref(t Term) Term {
	if n, ok := t.(*Named); ok && p.expand {
		return p.deref(n.Def)
	}

	return t
}
