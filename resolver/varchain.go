package resolver

import (
	"github.com/hexsight/prospector/common"
)

// variableChainConfidence is fixed: a chain from the call-site variable to a
// known state-variable value is treated as ground truth.
const variableChainConfidence = 100

// VariableChain resolves the common "cache a state variable in a local"
// pattern. It chases the caller's assignment chain from the call's storage
// variable down to a root name, then looks that name up in the caller's
// recorded state values. A marked address value is the answer.
type VariableChain struct{}

func (VariableChain) Name() string { return "variable-chain" }

func (VariableChain) Apply(c *Context) *Result {
	if c.Call.StorageVariable == "" || c.Caller == nil {
		return nil
	}

	root := c.Assignments.Chase(c.Call.StorageVariable)
	if root == c.Call.StorageVariable {
		// the chain made zero progress
		return nil
	}

	value, ok := c.Caller.Values[root]
	if !ok || !common.IsAddressValue(value) {
		return nil
	}

	match := Match{Address: value}
	if entry := c.Graph.ContractByAddress(value); entry != nil {
		match.Name = entry.Name
	}
	return &Result{
		Matches:    []Match{match},
		Confidence: variableChainConfidence,
	}
}
