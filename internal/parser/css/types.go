package css

// Declaration is a single CSS declaration extracted from a fragment.
// Property names are normalized to lowercase and values are trimmed.
type Declaration struct {
	Property string
	Value    string
	Line     uint32
	Column   uint32
}

// SyntaxError describes a structured-parse failure. The walker recovers by
// falling back to the tolerant tokenizer, so a SyntaxError never aborts
// declaration extraction on its own.
type SyntaxError struct {
	Message string
	Line    uint32
	Column  uint32
}

// Result contains the declarations extracted from one CSS fragment, plus the
// syntax error that forced the fallback tokenizer, if any.
type Result struct {
	Declarations []Declaration
	SyntaxErr    *SyntaxError
}
