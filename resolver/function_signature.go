package resolver

import (
	"github.com/hexsight/prospector/discovery"
)

// FunctionSignature collects every discovered contract whose ABI exposes a
// function with exactly the called function's name. Non-function ABI
// entries (events, errors, constructors) never count.
type FunctionSignature struct{}

func (FunctionSignature) Name() string { return "function-signature" }

func (FunctionSignature) Apply(c *Context) *Result {
	called := c.Call.CalledFunction
	if called == "" {
		return nil
	}

	var matches []Match
	for _, entry := range c.Graph.Contracts() {
		for _, sig := range c.Graph.ABIOf(entry.Address) {
			name, ok := discovery.FunctionName(sig)
			if !ok || name != called {
				continue
			}
			matches = append(matches, Match{Address: entry.Address, Name: entry.Name})
			break
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return &Result{
		Matches:    matches,
		Confidence: functionSignatureConfidence(len(matches)),
	}
}

// functionSignatureConfidence maps match count to confidence. A function
// name only one known contract exposes is very likely the target.
func functionSignatureConfidence(n int) int {
	switch n {
	case 1:
		return 99
	case 2:
		return 50
	default:
		return 30
	}
}
