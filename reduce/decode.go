package reduce

import (
	"fmt"
	"strconv"
	"strings"

	"gcl/lambda"
)

// The decoders in this file recover Go values from fully reduced terms.
// They are strictly structural: reduction expands every named combinator, so
// a normal form contains only variables, abstractions, and applications, and
// binder names are matched positionally (alpha-renaming is invisible here).

// DecodeNat decodes a Church numeral `λf.λx.f (f ... x)`.
func DecodeNat(t lambda.Term) (int, error) {
	fAbs, ok := t.(*lambda.Abs)
	if !ok {
		return 0, fmt.Errorf("not a numeral normal form")
	}

	xAbs, ok := fAbs.Body.(*lambda.Abs)
	if !ok {
		return 0, fmt.Errorf("not a numeral normal form")
	}

	n := 0
	body := xAbs.Body
	for {
		switch v := body.(type) {
		case *lambda.Var:
			if v.Name != xAbs.Param {
				return 0, fmt.Errorf("not a numeral normal form")
			}

			return n, nil
		case *lambda.App:
			fn, ok := v.Fn.(*lambda.Var)
			if !ok || fn.Name != fAbs.Param {
				return 0, fmt.Errorf("not a numeral normal form")
			}

			n++
			body = v.Arg
		default:
			return 0, fmt.Errorf("not a numeral normal form")
		}
	}
}

// DecodeBool decodes a Church boolean.
func DecodeBool(t lambda.Term) (bool, error) {
	aAbs, ok := t.(*lambda.Abs)
	if !ok {
		return false, fmt.Errorf("not a boolean normal form")
	}

	bAbs, ok := aAbs.Body.(*lambda.Abs)
	if !ok {
		return false, fmt.Errorf("not a boolean normal form")
	}

	vr, ok := bAbs.Body.(*lambda.Var)
	if !ok {
		return false, fmt.Errorf("not a boolean normal form")
	}

	switch vr.Name {
	case aAbs.Param:
		return true, nil
	case bAbs.Param:
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean normal form")
	}
}

// DecodeInt decodes a signed integer: a pair of naturals ⟨p, n⟩ denoting p−n.
func DecodeInt(t lambda.Term) (int, error) {
	p, n, err := decodePair(t)
	if err != nil {
		return 0, fmt.Errorf("not an integer normal form")
	}

	pos, err := DecodeNat(p)
	if err != nil {
		return 0, err
	}

	neg, err := DecodeNat(n)
	if err != nil {
		return 0, err
	}

	return pos - neg, nil
}

// DecodeList decodes a flagged-pair list into its element terms.
func DecodeList(t lambda.Term) ([]lambda.Term, error) {
	var elems []lambda.Term

	for {
		flag, payload, err := decodePair(t)
		if err != nil {
			return nil, fmt.Errorf("not a list normal form")
		}

		done, err := DecodeBool(flag)
		if err != nil {
			return nil, fmt.Errorf("not a list normal form")
		}

		if done {
			return elems, nil
		}

		head, tail, err := decodePair(payload)
		if err != nil {
			return nil, fmt.Errorf("not a list normal form")
		}

		elems = append(elems, head)
		t = tail
	}
}

// DecodeString decodes a list of code-point naturals.
func DecodeString(t lambda.Term) (string, error) {
	elems, err := DecodeList(t)
	if err != nil {
		return "", err
	}

	runes := make([]rune, len(elems))
	for i, elem := range elems {
		cp, err := DecodeNat(elem)
		if err != nil {
			return "", err
		}

		runes[i] = rune(cp)
	}

	return string(runes), nil
}

// DecodeOutput decodes the final ⟨state, output⟩ pair of a reduced program
// into the printed values, one string per executed `print`, in order.
func DecodeOutput(result lambda.Term) ([]string, error) {
	if Faulted(result) {
		return nil, fmt.Errorf("program faulted: no guard was true")
	}

	_, output, err := decodePair(result)
	if err != nil {
		return nil, fmt.Errorf("result is not a state/output pair")
	}

	elems, err := DecodeList(output)
	if err != nil {
		return nil, err
	}

	printed := make([]string, len(elems))
	for i, elem := range elems {
		s, err := decodeTagged(elem)
		if err != nil {
			return nil, err
		}

		printed[i] = s
	}

	return printed, nil
}

func decodeTagged(elem lambda.Term) (string, error) {
	tag, value, err := decodePair(elem)
	if err != nil {
		return "", fmt.Errorf("output element is not tagged")
	}

	tagN, err := DecodeNat(tag)
	if err != nil {
		return "", fmt.Errorf("output element is not tagged")
	}

	switch tagN {
	case lambda.TagInt:
		n, err := DecodeInt(value)
		if err != nil {
			return "", err
		}

		return strconv.Itoa(n), nil
	case lambda.TagBool:
		b, err := DecodeBool(value)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(b), nil
	case lambda.TagString:
		return DecodeString(value)
	case lambda.TagFunc:
		cells, err := DecodeList(value)
		if err != nil {
			return "", err
		}

		strs := make([]string, len(cells))
		for i, cell := range cells {
			n, err := DecodeInt(cell)
			if err != nil {
				return "", err
			}

			strs[i] = strconv.Itoa(n)
		}

		return "(" + strings.Join(strs, ", ") + ")", nil
	default:
		return "", fmt.Errorf("unknown output tag %d", tagN)
	}
}

// decodePair matches the normal form of `pair a b`, `λs.s a b`.
func decodePair(t lambda.Term) (lambda.Term, lambda.Term, error) {
	sAbs, ok := t.(*lambda.Abs)
	if !ok {
		return nil, nil, fmt.Errorf("not a pair normal form")
	}

	outer, ok := sAbs.Body.(*lambda.App)
	if !ok {
		return nil, nil, fmt.Errorf("not a pair normal form")
	}

	inner, ok := outer.Fn.(*lambda.App)
	if !ok {
		return nil, nil, fmt.Errorf("not a pair normal form")
	}

	sel, ok := inner.Fn.(*lambda.Var)
	if !ok || sel.Name != sAbs.Param {
		return nil, nil, fmt.Errorf("not a pair normal form")
	}

	return inner.Arg, outer.Arg, nil
}
