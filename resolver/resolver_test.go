package resolver

import (
	"github.com/hexsight/prospector/discovery"
	"github.com/hexsight/prospector/ir"
)

// Fixture addresses. The caller's recorded troveManager value is spelled in
// lowercase on purpose, so tests exercise the case-insensitive address
// comparison between state values and graph entries.
const (
	borrowerOpsAddr   = "eth:0x24179CD81c9e782A4096035f7eC97fB8B783e007"
	troveManagerAddr  = "eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2"
	troveManagerValue = "eth:0xa39739ef8b0231dbfa0dcda07d7e29faabcf4bb2"
	vaultAddr         = "eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0"
	stabilityPoolAddr = "eth:0x66017D22b0f8556afDd19FC67041899Eb65a21bb"
	activePoolAddr    = "eth:0xDf9Eb223bAFBE5c5271415C75aeCD68C21fE3D7F"
	defaultPoolAddr   = "eth:0x57ab1ec28D129707052df4dF418D58a2D46d5f51"
)

const cachedTroveManagerIR = `
def liquidate(address _borrower):
    troveManagerCached(ITroveManager) := troveManager(ITroveManager)
    troveManagerCached.liquidate(_borrower)
`

func testGraph() *discovery.Output {
	return &discovery.Output{
		Entries: []discovery.Entry{
			{
				Address: borrowerOpsAddr,
				Name:    "BorrowerOperations",
				Type:    discovery.TypeContract,
				Values: map[string]string{
					"troveManager": troveManagerValue,
					"maxFee":       "5000000000000000",
				},
			},
			{Address: troveManagerAddr, Name: "TroveManager", Type: discovery.TypeContract},
			{Address: vaultAddr, Name: "Vault", Type: discovery.TypeContract},
			{Address: stabilityPoolAddr, Name: "StabilityPool", Type: discovery.TypeContract},
			{Address: activePoolAddr, Name: "ActivePool", Type: discovery.TypeContract},
			{Address: defaultPoolAddr, Name: "DefaultPool", Type: discovery.TypeContract},
		},
		ABIs: map[string][]string{
			troveManagerAddr: {
				"function liquidate(address _borrower)",
				"event TroveLiquidated(address,uint256)",
			},
			stabilityPoolAddr: {"function deposit(uint256 _amount)"},
			activePoolAddr:    {"function deposit(uint256 _amount)"},
			defaultPoolAddr:   {"function deposit(uint256 _amount)"},
		},
	}
}

// testContext builds a resolution context against the fixture graph with
// BorrowerOperations as the caller.
func testContext(call ExternalCall, irText string) *Context {
	graph := testGraph()
	return &Context{
		Call:        call,
		Caller:      graph.ContractByAddress(borrowerOpsAddr),
		Graph:       graph,
		Assignments: ir.ParseAssignments(irText),
	}
}
