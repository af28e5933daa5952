// Package discovery holds the snapshot of the contract graph that earlier
// pipeline stages (crawler, decompiler, ABI fetcher) have already built.
// The resolution engine treats it as read-only evidence.
package discovery

import (
	"github.com/hexsight/prospector/common"
)

// Entry types as recorded by the crawler. Only contracts participate in
// call-target resolution; wallets and tokens are kept in the snapshot for
// display purposes.
const (
	TypeContract = "Contract"
	TypeWallet   = "Wallet"
	TypeToken    = "Token"
)

// Entry is one node of the discovered-contract graph.
//
// Values maps state-variable names to their recorded values. A value holding
// an address carries the common.AddressMark prefix; everything else is an
// opaque string.
type Entry struct {
	Address string            `json:"address"            yaml:"address"`
	Name    string            `json:"name,omitempty"     yaml:"name,omitempty"`
	Type    string            `json:"type"               yaml:"type"`
	Values  map[string]string `json:"values,omitempty"   yaml:"values,omitempty"`
}

// Output is the full graph snapshot: the ordered entry list plus each
// contract's ABI as a sequence of human-readable signature strings.
type Output struct {
	Entries []Entry             `json:"entries"        yaml:"entries"`
	ABIs    map[string][]string `json:"abis,omitempty" yaml:"abis,omitempty"`
}

// ContractByAddress returns the contract entry at addr, comparing addresses
// case-insensitively on the hex part. It returns nil when the graph has no
// contract at that address.
func (o *Output) ContractByAddress(addr string) *Entry {
	key := common.AddressKey(addr)
	for i := range o.Entries {
		e := &o.Entries[i]
		if e.Type == TypeContract && common.AddressKey(e.Address) == key {
			return e
		}
	}
	return nil
}

// Contracts returns the entries of type Contract in snapshot order.
func (o *Output) Contracts() []Entry {
	var out []Entry
	for _, e := range o.Entries {
		if e.Type == TypeContract {
			out = append(out, e)
		}
	}
	return out
}

// ABIOf returns the recorded ABI entries for addr, or nil when the snapshot
// has none. Lookup tolerates checksum-case differences in the map keys.
func (o *Output) ABIOf(addr string) []string {
	if sigs, ok := o.ABIs[addr]; ok {
		return sigs
	}
	key := common.AddressKey(addr)
	for a, sigs := range o.ABIs {
		if common.AddressKey(a) == key {
			return sigs
		}
	}
	return nil
}
