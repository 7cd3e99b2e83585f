package typing

import "fmt"

// DataType is the interface for all data types in GCL.
type DataType interface {
	// Repr returns a string representing the data type.
	Repr() string

	// equals takes in another DataType and returns if the two data types are
	// exactly equal.  It is meant to only be called internally.
	equals(other DataType) bool
}

// Equals computes equality between two data types.  Unknown types compare
// equal to everything so that one untypeable sub-expression doesn't cascade
// errors through its parents.
func Equals(a, b DataType) bool {
	if IsUnknown(a) || IsUnknown(b) {
		return true
	}

	return a.equals(b)
}

// IsUnknown returns whether a type is the unknown type.  A nil type is
// treated as unknown.
func IsUnknown(dt DataType) bool {
	if dt == nil {
		return true
	}

	_, ok := dt.(UnknownType)
	return ok
}

// -----------------------------------------------------------------------------

// PrimType represents a primitive GCL type.
type PrimType int

// Enumeration of primitive types.  String is expression-only: it arises from
// literals and concatenation and cannot be declared.
const (
	PrimInt = PrimType(iota)
	PrimBool
	PrimString
)

func (pt PrimType) Repr() string {
	switch pt {
	case PrimInt:
		return "int"
	case PrimBool:
		return "bool"
	default:
		return "string"
	}
}

func (pt PrimType) equals(other DataType) bool {
	opt, ok := other.(PrimType)
	return ok && pt == opt
}

// -----------------------------------------------------------------------------

// FuncType represents the type of a `function[..N]` declaration: a mapping of
// the integer indices 0..Upper (inclusive) to integers.
type FuncType struct {
	// The inclusive upper bound of the index range.
	Upper int
}

func (ft FuncType) Repr() string {
	return fmt.Sprintf("function[..%d]", ft.Upper)
}

func (ft FuncType) equals(other DataType) bool {
	oft, ok := other.(FuncType)
	return ok && ft.Upper == oft.Upper
}

// -----------------------------------------------------------------------------

// FuncLitType represents the type of a comma expression: a function literal
// of a fixed number of integer elements.  It is distinct from every declared
// FuncType; assignment bridges the two when the lengths correspond.
type FuncLitType struct {
	// The number of elements in the literal.
	Length int
}

func (flt FuncLitType) Repr() string {
	return fmt.Sprintf("function of length %d", flt.Length)
}

func (flt FuncLitType) equals(other DataType) bool {
	oflt, ok := other.(FuncLitType)
	return ok && flt.Length == oflt.Length
}

// IsFunction returns whether a type is a function type: a declared function
// range or a function literal.
func IsFunction(dt DataType) bool {
	switch dt.(type) {
	case FuncType, FuncLitType:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// UnknownType marks an expression whose type could not be determined because
// of an earlier error.
type UnknownType struct{}

func (UnknownType) Repr() string {
	return "<unknown>"
}

func (UnknownType) equals(other DataType) bool {
	return true
}
