package index

import (
	"testing"

	"github.com/hexsight/prospector/discovery"
)

func testGraph() *discovery.Output {
	return &discovery.Output{
		Entries: []discovery.Entry{
			{
				Address: "eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2",
				Name:    "TroveManager",
				Type:    discovery.TypeContract,
			},
			{
				Address: "eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0",
				Name:    "StabilityPool",
				Type:    discovery.TypeContract,
			},
			{
				Address: "eth:0x66017D22b0f8556afDd19FC67041899Eb65a21bb",
				Name:    "deployer",
				Type:    discovery.TypeWallet,
			},
		},
		ABIs: map[string][]string{
			"eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2": {
				"function liquidate(address _borrower)",
				"event TroveLiquidated(address,uint256)",
			},
			"eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0": {
				"function deposit(uint256 _amount)",
			},
		},
	}
}

func TestSearchByContractName(t *testing.T) {
	idx, err := New(testGraph())
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	defer idx.Close()

	docs, scores := idx.Search("StabilityPool")
	if len(docs) == 0 {
		t.Fatal("expected at least one hit")
	}
	if docs[0].Name != "StabilityPool" {
		t.Errorf("expected StabilityPool first, got %q", docs[0].Name)
	}
	if len(scores) != len(docs) {
		t.Errorf("scores/docs length mismatch: %d vs %d", len(scores), len(docs))
	}
}

func TestSearchByFunctionName(t *testing.T) {
	idx, err := New(testGraph())
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	defer idx.Close()

	docs, _ := idx.Search("liquidate")
	if len(docs) == 0 {
		t.Fatal("expected a hit for a function name")
	}
	if docs[0].Name != "TroveManager" {
		t.Errorf("expected TroveManager, got %q", docs[0].Name)
	}
}

func TestSearchIndexesOnlyContracts(t *testing.T) {
	idx, err := New(testGraph())
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	defer idx.Close()

	docs, _ := idx.Search("deployer")
	for _, doc := range docs {
		if doc.Name == "deployer" {
			t.Fatal("wallet entries must not be indexed")
		}
	}
}
