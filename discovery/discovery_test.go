package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func testOutput() *Output {
	return &Output{
		Entries: []Entry{
			{
				Address: "eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2",
				Name:    "TroveManager",
				Type:    TypeContract,
			},
			{
				Address: "eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0",
				Name:    "Vault",
				Type:    TypeContract,
				Values:  map[string]string{"owner": "eth:0x66017D22b0f8556afDd19FC67041899Eb65a21bb"},
			},
			{
				Address: "eth:0x66017D22b0f8556afDd19FC67041899Eb65a21bb",
				Name:    "deployer",
				Type:    TypeWallet,
			},
		},
		ABIs: map[string][]string{
			"eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0": {
				"function deposit(uint256)",
				"event Deposited(address,uint256)",
			},
		},
	}
}

func TestContractByAddressIsCaseInsensitive(t *testing.T) {
	graph := testOutput()

	entry := graph.ContractByAddress("eth:0xa39739ef8b0231dbfa0dcda07d7e29faabcf4bb2")
	if entry == nil {
		t.Fatal("expected a contract entry, got nil")
	}
	if entry.Name != "TroveManager" {
		t.Errorf("expected TroveManager, got %q", entry.Name)
	}
}

func TestContractByAddressSkipsNonContracts(t *testing.T) {
	graph := testOutput()
	if entry := graph.ContractByAddress("eth:0x66017D22b0f8556afDd19FC67041899Eb65a21bb"); entry != nil {
		t.Errorf("wallet entries must not resolve as contracts, got %+v", entry)
	}
}

func TestContracts(t *testing.T) {
	graph := testOutput()
	contracts := graph.Contracts()
	if len(contracts) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(contracts))
	}
	if contracts[0].Name != "TroveManager" || contracts[1].Name != "Vault" {
		t.Errorf("unexpected contract order: %q, %q", contracts[0].Name, contracts[1].Name)
	}
}

func TestABIOfToleratesCaseDifferences(t *testing.T) {
	graph := testOutput()
	sigs := graph.ABIOf("eth:0x5f98805a4e8be255a32880fdec7f6728c6568ba0")
	if len(sigs) != 2 {
		t.Fatalf("expected 2 ABI entries, got %d", len(sigs))
	}
	if graph.ABIOf("eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2") != nil {
		t.Error("expected nil ABI for a contract without one")
	}
}

func TestLoadJSONSnapshot(t *testing.T) {
	content := `{
		"entries": [
			{"address": "eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2", "name": "TroveManager", "type": "Contract"}
		],
		"abis": {
			"eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2": ["function liquidate(address)"]
		}
	}`
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	graph, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if len(graph.Entries) != 1 || graph.Entries[0].Name != "TroveManager" {
		t.Fatalf("unexpected entries: %+v", graph.Entries)
	}
	if sigs := graph.ABIOf("eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2"); len(sigs) != 1 {
		t.Errorf("expected 1 ABI entry, got %v", sigs)
	}
}

func TestLoadYAMLSnapshotWithJSONABI(t *testing.T) {
	content := `
entries:
  - address: "eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0"
    name: Vault
    type: Contract
abi_json:
  "eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0": '[{"type":"function","name":"deposit","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]}]'
`
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	graph, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	sigs := graph.ABIOf("eth:0x5F98805A4E8be255a32880FDeC7F6728C6568bA0")
	if len(sigs) != 1 || sigs[0] != "function deposit(uint256)" {
		t.Fatalf("expected the JSON ABI converted to signatures, got %v", sigs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestSearchFindsContractsByName(t *testing.T) {
	graph := testOutput()
	entries, scores := graph.Search("TroveManager")
	if len(entries) == 0 {
		t.Fatal("expected at least one match")
	}
	if entries[0].Name != "TroveManager" {
		t.Errorf("expected TroveManager first, got %q", entries[0].Name)
	}
	if len(scores) != len(entries) {
		t.Errorf("scores/entries length mismatch: %d vs %d", len(scores), len(entries))
	}
}
