package resolver

import (
	"strings"
)

// interfaceNamePrefix is the naming convention this heuristic relies on:
// ITroveManager is expected to be implemented by a contract named
// TroveManager.
const interfaceNamePrefix = "I"

// InterfaceName matches the call's declared interface type against
// discovered contract names by stripping the conventional I prefix.
type InterfaceName struct{}

func (InterfaceName) Name() string { return "interface-name" }

func (InterfaceName) Apply(c *Context) *Result {
	t := c.Call.InterfaceType
	if !strings.HasPrefix(t, interfaceNamePrefix) || len(t) <= len(interfaceNamePrefix) {
		return nil
	}
	expected := t[len(interfaceNamePrefix):]

	var matches []Match
	for _, entry := range c.Graph.Contracts() {
		if strings.EqualFold(entry.Name, expected) {
			matches = append(matches, Match{Address: entry.Address, Name: entry.Name})
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return &Result{
		Matches:    matches,
		Confidence: interfaceNameConfidence(len(matches)),
	}
}

// interfaceNameConfidence maps match count to confidence. Ambiguity cuts
// trust sharply, but a crowded match set still carries tie-breaking value.
func interfaceNameConfidence(n int) int {
	switch n {
	case 1:
		return 90
	case 2:
		return 60
	default:
		return 40
	}
}
