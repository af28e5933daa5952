package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI entry kinds. An entry with no leading kind keyword is treated as a
// function: operators frequently hand-write bare "deposit(uint256)" entries
// and dropping them would silently lose resolution evidence.
const (
	KindFunction    = "function"
	KindEvent       = "event"
	KindError       = "error"
	KindConstructor = "constructor"
	KindReceive     = "receive"
	KindFallback    = "fallback"
)

var nonFunctionKinds = map[string]bool{
	KindEvent:       true,
	KindError:       true,
	KindConstructor: true,
	KindReceive:     true,
	KindFallback:    true,
}

// EntryKind returns the kind of a human-readable ABI entry.
func EntryKind(sig string) string {
	fields := strings.Fields(sig)
	if len(fields) == 0 {
		return ""
	}
	head := fields[0]
	if i := strings.Index(head, "("); i >= 0 {
		head = head[:i]
	}
	if nonFunctionKinds[head] {
		return head
	}
	return KindFunction
}

// FunctionName extracts the function name from a human-readable ABI entry.
// It returns ok=false for non-function entries and for entries with no
// parameter list (nothing to extract a name from).
func FunctionName(sig string) (name string, ok bool) {
	paren := strings.Index(sig, "(")
	if paren < 0 {
		return "", false
	}
	header := strings.Fields(sig[:paren])
	switch len(header) {
	case 0:
		return "", false
	case 1:
		if nonFunctionKinds[header[0]] {
			return "", false
		}
		return header[0], true
	default:
		if header[0] != KindFunction {
			return "", false
		}
		return header[len(header)-1], true
	}
}

// SignaturesFromJSON converts a raw JSON ABI blob into the human-readable
// entry list stored in snapshots. Methods, events and custom errors are
// included with their kind keyword; entries are sorted by name so the output
// is deterministic.
func SignaturesFromJSON(raw string) ([]string, error) {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON ABI: %w", err)
	}

	var sigs []string
	for _, m := range parsed.Methods {
		sigs = append(sigs, fmt.Sprintf("%s %s", KindFunction, m.Sig))
	}
	for _, e := range parsed.Events {
		sigs = append(sigs, fmt.Sprintf("%s %s", KindEvent, e.Sig))
	}
	for _, e := range parsed.Errors {
		sigs = append(sigs, fmt.Sprintf("%s %s", KindError, e.Sig))
	}
	sort.Strings(sigs)
	return sigs, nil
}
