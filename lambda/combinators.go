package lambda

import "strconv"

// This file is the named combinator library the translator builds formulas
// from.  Every definition is a closed term; the printer shows the names and
// the reducer expands them on demand.

func v(name string) *Var {
	return &Var{Name: name}
}

// Church booleans.
var (
	// true = λa.λb.a
	True = &Named{Name: "true", Def: Lam("a", Lam("b", v("a")))}

	// false = λa.λb.b
	False = &Named{Name: "false", Def: Lam("a", Lam("b", v("b")))}

	// if = λc.λt.λe.c t e
	Cond = &Named{Name: "if", Def: Lam("c", Lam("t", Lam("e", Apply(v("c"), v("t"), v("e")))))}

	// not = λp.p false true
	Not = &Named{Name: "not", Def: Lam("p", Apply(v("p"), False, True))}

	// and = λp.λq.p q false
	And = &Named{Name: "and", Def: Lam("p", Lam("q", Apply(v("p"), v("q"), False)))}

	// or = λp.λq.p true q
	Or = &Named{Name: "or", Def: Lam("p", Lam("q", Apply(v("p"), True, v("q"))))}

	// booleq = λp.λq.p q (not q)
	BoolEq = &Named{Name: "booleq", Def: Lam("p", Lam("q", Apply(v("p"), v("q"), Apply(Not, v("q")))))}
)

// Church naturals.
var (
	// succ = λn.λf.λx.f (n f x)
	Succ = &Named{Name: "succ", Def: Lam("n", Lam("f", Lam("x", Apply(v("f"), Apply(v("n"), v("f"), v("x"))))))}

	// add = λm.λn.λf.λx.m f (n f x)
	Add = &Named{Name: "add", Def: Lam("m", Lam("n", Lam("f", Lam("x", Apply(v("m"), v("f"), Apply(v("n"), v("f"), v("x")))))))}

	// mul = λm.λn.λf.m (n f)
	Mul = &Named{Name: "mul", Def: Lam("m", Lam("n", Lam("f", Apply(v("m"), Apply(v("n"), v("f"))))))}

	// pred = λn.λf.λx.n (λg.λh.h (g f)) (λu.x) (λu.u)
	Pred = &Named{Name: "pred", Def: Lam("n", Lam("f", Lam("x", Apply(
		v("n"),
		Lam("g", Lam("h", Apply(v("h"), Apply(v("g"), v("f"))))),
		Lam("u", v("x")),
		Lam("u", v("u")),
	))))}

	// monus = λm.λn.n pred m  (truncated subtraction)
	Monus = &Named{Name: "monus", Def: Lam("m", Lam("n", Apply(v("n"), Pred, v("m"))))}

	// iszero = λn.n (λu.false) true
	IsZero = &Named{Name: "iszero", Def: Lam("n", Apply(v("n"), Lam("u", False), True))}

	// leq = λm.λn.iszero (monus m n)
	LEq = &Named{Name: "leq", Def: Lam("m", Lam("n", Apply(IsZero, Apply(Monus, v("m"), v("n")))))}

	// nateq = λm.λn.and (leq m n) (leq n m)
	NatEq = &Named{Name: "nateq", Def: Lam("m", Lam("n", Apply(And, Apply(LEq, v("m"), v("n")), Apply(LEq, v("n"), v("m")))))}
)

// Numeral returns the Church numeral for a non-negative n, named by its
// decimal value.
func Numeral(n int) *Named {
	body := Term(v("x"))
	for i := 0; i < n; i++ {
		body = Apply(v("f"), body)
	}

	return &Named{Name: strconv.Itoa(n), Def: Lam("f", Lam("x", body))}
}

// Pairs.
var (
	// pair = λa.λb.λs.s a b
	PairC = &Named{Name: "pair", Def: Lam("a", Lam("b", Lam("s", Apply(v("s"), v("a"), v("b")))))}

	// fst = λp.p true
	Fst = &Named{Name: "fst", Def: Lam("p", Apply(v("p"), True))}

	// snd = λp.p false
	Snd = &Named{Name: "snd", Def: Lam("p", Apply(v("p"), False))}
)

// Pair builds the pair of two terms.
func Pair(a, b Term) Term {
	return Apply(PairC, a, b)
}

// Signed integers: a pair of naturals ⟨p, n⟩ denoting p−n, so subtraction
// and unary minus are exact rather than truncated.
var (
	// neg = λz.pair (snd z) (fst z)
	Neg = &Named{Name: "neg", Def: Lam("z", Pair(Apply(Snd, v("z")), Apply(Fst, v("z"))))}

	// zadd = λx.λy.pair (add (fst x) (fst y)) (add (snd x) (snd y))
	ZAdd = &Named{Name: "zadd", Def: Lam("x", Lam("y", Pair(
		Apply(Add, Apply(Fst, v("x")), Apply(Fst, v("y"))),
		Apply(Add, Apply(Snd, v("x")), Apply(Snd, v("y"))),
	)))}

	// zsub = λx.λy.zadd x (neg y)
	ZSub = &Named{Name: "zsub", Def: Lam("x", Lam("y", Apply(ZAdd, v("x"), Apply(Neg, v("y")))))}

	// zmul = λx.λy.pair (ac+bd) (ad+bc) for x=⟨a,b⟩, y=⟨c,d⟩
	ZMul = &Named{Name: "zmul", Def: Lam("x", Lam("y", Pair(
		Apply(Add,
			Apply(Mul, Apply(Fst, v("x")), Apply(Fst, v("y"))),
			Apply(Mul, Apply(Snd, v("x")), Apply(Snd, v("y")))),
		Apply(Add,
			Apply(Mul, Apply(Fst, v("x")), Apply(Snd, v("y"))),
			Apply(Mul, Apply(Snd, v("x")), Apply(Fst, v("y")))),
	)))}

	// zleq = λx.λy.leq (a+d) (c+b) for x=⟨a,b⟩, y=⟨c,d⟩
	ZLeq = &Named{Name: "zleq", Def: Lam("x", Lam("y", Apply(LEq,
		Apply(Add, Apply(Fst, v("x")), Apply(Snd, v("y"))),
		Apply(Add, Apply(Fst, v("y")), Apply(Snd, v("x"))),
	)))}

	// zless = λx.λy.not (zleq y x)
	ZLess = &Named{Name: "zless", Def: Lam("x", Lam("y", Apply(Not, Apply(ZLeq, v("y"), v("x")))))}

	// zeq = λx.λy.and (zleq x y) (zleq y x)
	ZEq = &Named{Name: "zeq", Def: Lam("x", Lam("y", Apply(And, Apply(ZLeq, v("x"), v("y")), Apply(ZLeq, v("y"), v("x")))))}
)

// Int encodes a signed integer literal.
func Int(k int) Term {
	if k < 0 {
		return Pair(Numeral(0), Numeral(-k))
	}

	return Pair(Numeral(k), Numeral(0))
}

// Lists as flagged pairs: ⟨done?, payload⟩.  The output channel and strings
// both use this encoding.
var (
	// nil = pair true true
	Nil = &Named{Name: "nil", Def: Pair(True, True)}

	// cons = λh.λt.pair false (pair h t)
	Cons = &Named{Name: "cons", Def: Lam("h", Lam("t", Pair(False, Pair(v("h"), v("t")))))}

	// isnil = fst
	IsNil = &Named{Name: "isnil", Def: Fst}

	// head = λl.fst (snd l)
	Head = &Named{Name: "head", Def: Lam("l", Apply(Fst, Apply(Snd, v("l"))))}

	// tail = λl.snd (snd l)
	Tail = &Named{Name: "tail", Def: Lam("l", Apply(Snd, Apply(Snd, v("l"))))}
)

// Fixed point and the recursive list operations.
var (
	// fix = λf.(λx.f (x x)) (λx.f (x x))
	Fix = &Named{Name: "fix", Def: Lam("f", Apply(
		Lam("x", Apply(v("f"), Apply(v("x"), v("x")))),
		Lam("x", Apply(v("f"), Apply(v("x"), v("x")))),
	))}

	// snoc = fix (λr.λl.λe.(fst l) (cons e nil) (cons (head l) (r (tail l) e)))
	Snoc = &Named{Name: "snoc", Def: Apply(Fix, Lam("r", Lam("l", Lam("e", Apply(
		Apply(Fst, v("l")),
		Apply(Cons, v("e"), Nil),
		Apply(Cons, Apply(Head, v("l")), Apply(v("r"), Apply(Tail, v("l")), v("e"))),
	)))))}

	// append = fix (λr.λa.λb.(fst a) b (cons (head a) (r (tail a) b)))
	Append = &Named{Name: "append", Def: Apply(Fix, Lam("r", Lam("a", Lam("b", Apply(
		Apply(Fst, v("a")),
		v("b"),
		Apply(Cons, Apply(Head, v("a")), Apply(v("r"), Apply(Tail, v("a")), v("b"))),
	)))))}

	// listeq = fix (λr.λa.λb.(fst a) (fst b)
	//            (and (not (fst b)) (and (nateq (head a) (head b)) (r (tail a) (tail b)))))
	ListEq = &Named{Name: "listeq", Def: Apply(Fix, Lam("r", Lam("a", Lam("b", Apply(
		Apply(Fst, v("a")),
		Apply(Fst, v("b")),
		Apply(And,
			Apply(Not, Apply(Fst, v("b"))),
			Apply(And,
				Apply(NatEq, Apply(Head, v("a")), Apply(Head, v("b"))),
				Apply(v("r"), Apply(Tail, v("a")), Apply(Tail, v("b"))))),
	)))))}
)

// Str encodes a string as the list of its Unicode code points.
func Str(s string) Term {
	runes := []rune(s)

	list := Term(Nil)
	for i := len(runes) - 1; i >= 0; i-- {
		list = Apply(Cons, Numeral(int(runes[i])), list)
	}

	return list
}

// State and function-range cells.
var (
	// update = λi.λv.λs.λj.(nateq i j) v (s j)
	Update = &Named{Name: "update", Def: Lam("i", Lam("v", Lam("s", Lam("j", Apply(
		Apply(NatEq, v("i"), v("j")),
		v("v"),
		Apply(v("s"), v("j")),
	)))))}

	// fnupd = λf.λi.λv.λj.(zeq i j) v (f j)
	Fnupd = &Named{Name: "fnupd", Def: Lam("f", Lam("i", Lam("v", Lam("j", Apply(
		Apply(ZEq, v("i"), v("j")),
		v("v"),
		Apply(v("f"), v("j")),
	)))))}

	// zerofn = λj.pair 0 0  (a function range with every cell zero)
	ZeroFn = &Named{Name: "zerofn", Def: Lam("j", Int(0))}
)

// Fault is the distinguished free variable an `if` with no true guard applies
// itself to.  Reduction cannot eliminate it, so the reduced term gets stuck
// with `fault` at its head, which the host reducer detects.
var Fault = &Var{Name: "fault"}

// Output element tags.  Every printed value enters the output list as a
// ⟨tag, value⟩ pair so heterogeneous outputs stay decodable.
const (
	TagInt = iota
	TagBool
	TagString
	TagFunc // value is the extension of the range, a list of Ints
)
