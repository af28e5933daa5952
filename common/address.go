package common

import (
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// AddressMark prefixes a recorded state value to mark it as a chain address.
// Discovery stores every address the crawler has seen in this form, e.g.
// "eth:0xA39739EF8b0231DbFA0DcdA07d7e29faAbCf4bb2", so that plain numeric or
// string state values can never be mistaken for call targets.
const AddressMark = "eth:"

// Address pairs a marked address string with an optional human-readable name
// taken from the discovery graph. Desc is empty when the graph has no entry
// for the address.
type Address struct {
	Address string
	Desc    string
}

// IsAddressValue reports whether a recorded state value is a marked,
// well-formed chain address.
func IsAddressValue(v string) bool {
	if !strings.HasPrefix(v, AddressMark) {
		return false
	}
	return ethcommon.IsHexAddress(strings.TrimPrefix(v, AddressMark))
}

// AddressKey returns the canonical lookup key for a marked address so that
// differently-checksummed spellings of the same address compare equal.
func AddressKey(v string) string {
	hex := strings.TrimPrefix(v, AddressMark)
	if ethcommon.IsHexAddress(hex) {
		return AddressMark + strings.ToLower(ethcommon.HexToAddress(hex).Hex())
	}
	return strings.ToLower(v)
}
