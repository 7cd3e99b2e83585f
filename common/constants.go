package common

const (
	SrcFileExtension = ".gcl"
	ProjectFileName  = "gcl.toml"
	GclcVersion      = "0.3.0"

	// DefaultMaxDepth bounds translator recursion on pathological nesting.
	DefaultMaxDepth = 512

	// DefaultMaxSteps is the reducer's default fuel.
	DefaultMaxSteps = 200000
)
