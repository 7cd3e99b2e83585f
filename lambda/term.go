package lambda

// Term is the interface for all Lambda-Calculus terms.  A term is a pure
// tree: once built it is never mutated, so sub-terms can be shared freely.
// Translation builds fresh application and abstraction nodes around the
// shared combinator library, and reduction produces new trees.
type Term interface {
	term()
}

// Var is a variable reference.
type Var struct {
	// The name of the variable.
	Name string
}

// Abs is an abstraction: a function of one parameter, `λx.body`.
type Abs struct {
	// The parameter name the body may reference.
	Param string

	// The body of the abstraction.
	Body Term
}

// App is the application of a function term to an argument term.
type App struct {
	Fn, Arg Term
}

// Named is a combinator: a closed term with a fixed definition that prints as
// its bare name.  Named terms keep translated formulas readable; reduction
// expands them to their definitions on demand.
type Named struct {
	// The name the combinator prints as.
	Name string

	// The defining term.  Definitions may reference other combinators but
	// never form a cycle: recursion goes through `fix`.
	Def Term
}

func (*Var) term()   {}
func (*Abs) term()   {}
func (*App) term()   {}
func (*Named) term() {}

// -----------------------------------------------------------------------------

// Apply builds a left-associated application chain: Apply(f, a, b) is
// `((f a) b)`.
func Apply(fn Term, args ...Term) Term {
	for _, arg := range args {
		fn = &App{Fn: fn, Arg: arg}
	}

	return fn
}

// Lam builds a single-parameter abstraction.  Multi-parameter functions are
// written by nesting, mirroring the calculus itself.
func Lam(param string, body Term) Term {
	return &Abs{Param: param, Body: body}
}
