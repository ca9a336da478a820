package domain

// ExampleFile is one input source file from the example corpus
type ExampleFile struct {
	Path string // Path handed to the compiler
	Name string // Base name, used in report lines
}
