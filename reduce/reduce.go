// Package reduce is the host evaluator for translated formulas: normal-order
// beta reduction over lambda terms with a step budget, plus decoders that
// recover Go values from normal forms.  The translator never depends on this
// package; it exists so translated programs can actually be run and checked.
package reduce

import (
	"fmt"

	"gcl/lambda"
)

// Reducer normalizes terms by leftmost-outermost reduction.  Named
// combinators expand on demand, so normal forms contain only variables,
// abstractions, and applications.  A reducer is single-use per Reduce call
// but may be reused sequentially.
type Reducer struct {
	// The step budget: the number of beta reductions allowed before
	// normalization gives up.
	maxSteps int

	steps int
	out   bool

	// Counter for fresh variable names minted during capture avoidance.
	fresh int
}

// NewReducer creates a reducer with the given step budget.
func NewReducer(maxSteps int) *Reducer {
	return &Reducer{maxSteps: maxSteps}
}

// Steps returns the number of beta reductions the last Reduce performed.
func (r *Reducer) Steps() int {
	return r.steps
}

// Reduce normalizes a term.  If the step budget runs out, the partially
// reduced term is returned along with an error: the term may be diverging,
// or the budget may simply be too small for the program.
func (r *Reducer) Reduce(t lambda.Term) (lambda.Term, error) {
	r.steps = 0
	r.out = false

	nf := r.normalize(t)
	if r.out {
		return nf, fmt.Errorf("reduction exceeded %d steps", r.maxSteps)
	}

	return nf, nil
}

// -----------------------------------------------------------------------------

// normalize reduces a term to full normal form: head first, then under
// abstractions and across stuck application spines.
func (r *Reducer) normalize(t lambda.Term) lambda.Term {
	if r.out {
		return t
	}

	t = r.whnf(t)

	switch v := t.(type) {
	case *lambda.Abs:
		return &lambda.Abs{Param: v.Param, Body: r.normalize(v.Body)}
	case *lambda.App:
		// The head is stuck on a free variable; normalize the arguments.
		return &lambda.App{Fn: r.normalizeSpine(v.Fn), Arg: r.normalize(v.Arg)}
	default:
		return t
	}
}

func (r *Reducer) normalizeSpine(t lambda.Term) lambda.Term {
	if app, ok := t.(*lambda.App); ok {
		return &lambda.App{Fn: r.normalizeSpine(app.Fn), Arg: r.normalize(app.Arg)}
	}

	return t
}

// whnf reduces a term to weak head normal form, expanding named combinators
// and firing head redexes until the head is an abstraction or stuck.
func (r *Reducer) whnf(t lambda.Term) lambda.Term {
	for !r.out {
		switch v := t.(type) {
		case *lambda.Named:
			t = v.Def
		case *lambda.App:
			fn := r.whnf(v.Fn)

			abs, ok := fn.(*lambda.Abs)
			if !ok {
				return &lambda.App{Fn: fn, Arg: v.Arg}
			}

			if !r.spend() {
				return t
			}

			t = r.substitute(abs.Body, abs.Param, v.Arg)
		default:
			return t
		}
	}

	return t
}

func (r *Reducer) spend() bool {
	if r.steps >= r.maxSteps {
		r.out = true
		return false
	}

	r.steps++
	return true
}

// -----------------------------------------------------------------------------

// substitute replaces the free occurrences of name in body with value,
// renaming binders where a free variable of value would otherwise be
// captured.
func (r *Reducer) substitute(body lambda.Term, name string, value lambda.Term) lambda.Term {
	switch v := body.(type) {
	case *lambda.Var:
		if v.Name == name {
			return value
		}

		return v
	case *lambda.Named:
		// Combinator definitions are closed.
		return v
	case *lambda.App:
		return &lambda.App{
			Fn:  r.substitute(v.Fn, name, value),
			Arg: r.substitute(v.Arg, name, value),
		}
	case *lambda.Abs:
		if v.Param == name {
			return v
		}

		if freeIn(name, v.Body) && freeIn(v.Param, value) {
			freshName := r.freshName(v.Param)
			renamed := r.substitute(v.Body, v.Param, &lambda.Var{Name: freshName})
			return &lambda.Abs{Param: freshName, Body: r.substitute(renamed, name, value)}
		}

		return &lambda.Abs{Param: v.Param, Body: r.substitute(v.Body, name, value)}
	default:
		return body
	}
}

// freshName mints a variable name that cannot occur in any source term:
// translated formulas and the combinator library never use underscores.
func (r *Reducer) freshName(base string) string {
	r.fresh++
	return fmt.Sprintf("%s_%d", base, r.fresh)
}

func freeIn(name string, t lambda.Term) bool {
	switch v := t.(type) {
	case *lambda.Var:
		return v.Name == name
	case *lambda.App:
		return freeIn(name, v.Fn) || freeIn(name, v.Arg)
	case *lambda.Abs:
		return v.Param != name && freeIn(name, v.Body)
	default:
		// Named combinators are closed.
		return false
	}
}

// -----------------------------------------------------------------------------

// Faulted reports whether a reduced term is stuck on the `fault` variable: a
// guarded `if` ran with no true guard, GCL's abort.
func Faulted(t lambda.Term) bool {
	for {
		app, ok := t.(*lambda.App)
		if !ok {
			break
		}

		t = app.Fn
	}

	vr, ok := t.(*lambda.Var)
	return ok && vr.Name == lambda.Fault.Name
}
