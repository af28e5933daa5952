package resolver

// Heuristic is one independent inference strategy. Apply inspects the
// context and returns either a confidence-scored set of candidate targets
// or nil when the heuristic has no opinion. Implementations must be pure:
// no mutation of the context, no I/O, identical output for identical input.
type Heuristic interface {
	Name() string
	Apply(c *Context) *Result
}

// DefaultHeuristics returns the standard strategies in their standard
// order: the most deterministic evidence first. Registration order is the
// tie-break between equally-confident heuristics, so this order is part of
// the engine's contract, not a cosmetic choice.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		VariableChain{},
		InterfaceName{},
		FunctionSignature{},
	}
}
