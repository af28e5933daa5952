package resolver

import (
	"testing"
)

func TestVariableChainResolvesCachedStateVariable(t *testing.T) {
	rc := testContext(ExternalCall{
		StorageVariable: "troveManagerCached",
		InterfaceType:   "ITroveManager",
		CalledFunction:  "liquidate",
	}, cachedTroveManagerIR)

	result := VariableChain{}.Apply(rc)
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Confidence != 100 {
		t.Errorf("expected confidence 100, got %d", result.Confidence)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(result.Matches))
	}
	m := result.Matches[0]
	if m.Address != troveManagerValue {
		t.Errorf("expected address %s, got %s", troveManagerValue, m.Address)
	}
	if m.Name != "TroveManager" {
		t.Errorf("expected the graph name TroveManager, got %q", m.Name)
	}
}

func TestVariableChainNoProgressYieldsNothing(t *testing.T) {
	// troveManager is a state variable with a recorded value, but without
	// an assignment chain the heuristic stays silent
	rc := testContext(ExternalCall{StorageVariable: "troveManager"}, "")
	if result := (VariableChain{}).Apply(rc); result != nil {
		t.Fatalf("expected nil for a chain with no progress, got %+v", result)
	}
}

func TestVariableChainMissingStateValue(t *testing.T) {
	rc := testContext(ExternalCall{StorageVariable: "cached"}, `
cached(IPriceFeed) := priceFeed(IPriceFeed)
`)
	if result := (VariableChain{}).Apply(rc); result != nil {
		t.Fatalf("expected nil when the caller has no value for the root, got %+v", result)
	}
}

func TestVariableChainNonAddressValue(t *testing.T) {
	rc := testContext(ExternalCall{StorageVariable: "feeCached"}, `
feeCached(uint256) := maxFee(uint256)
`)
	if result := (VariableChain{}).Apply(rc); result != nil {
		t.Fatalf("expected nil for a value without the address mark, got %+v", result)
	}
}

func TestVariableChainUnknownAddressStillMatches(t *testing.T) {
	rc := testContext(ExternalCall{StorageVariable: "oracleCached"}, `
oracleCached(IOracle) := oracle(IOracle)
`)
	rc.Caller.Values["oracle"] = "eth:0x0000000000000000000000000000000000000bad"

	result := VariableChain{}.Apply(rc)
	if result == nil {
		t.Fatal("expected a result even when the graph lacks the address")
	}
	m := result.Matches[0]
	if m.Address != "eth:0x0000000000000000000000000000000000000bad" {
		t.Errorf("unexpected address %s", m.Address)
	}
	if m.Name != "" {
		t.Errorf("expected no name enrichment, got %q", m.Name)
	}
}

func TestVariableChainNilCaller(t *testing.T) {
	rc := testContext(ExternalCall{StorageVariable: "troveManagerCached"}, cachedTroveManagerIR)
	rc.Caller = nil
	if result := (VariableChain{}).Apply(rc); result != nil {
		t.Fatalf("expected nil when the caller is not in the graph, got %+v", result)
	}
}

func TestVariableChainCycleTerminates(t *testing.T) {
	rc := testContext(ExternalCall{StorageVariable: "a"}, `
a(IVault) := b(IVault)
b(IVault) := a(IVault)
`)
	// must terminate; with an even hop cap the walk lands back on a,
	// which is zero progress
	if result := (VariableChain{}).Apply(rc); result != nil {
		t.Fatalf("expected nil, got %+v", result)
	}
}
