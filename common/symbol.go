package common

import (
	"gcl/report"
	"gcl/typing"
)

// Symbol represents a semantic symbol: a declared GCL variable.
type Symbol struct {
	// The name of the symbol.
	Name string

	// Where the symbol was declared.
	DefSpan *report.TextSpan

	// The declared type of the symbol.
	Type typing.DataType

	// The state cell index the translator uses to address this symbol.
	// Slots are numbered in declaration order across the whole program;
	// shadowing declarations get fresh slots.
	Slot int

	// Whether or not the symbol was actually used.
	Used bool
}
