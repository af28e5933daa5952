package resolver

import (
	"github.com/hexsight/prospector/discovery"
	"github.com/hexsight/prospector/ir"
)

// ExternalCall is one call site under resolution, produced upstream by the
// static-analysis driver. All fields may be empty when the decompiler could
// not recover them; heuristics treat empty fields as absent evidence.
type ExternalCall struct {
	StorageVariable string `json:"storageVariable" yaml:"storageVariable"`
	InterfaceType   string `json:"interfaceType"   yaml:"interfaceType"`
	CalledFunction  string `json:"calledFunction"  yaml:"calledFunction"`
}

// Context bundles everything a heuristic may inspect for one resolution:
// the call, the caller's graph entry, the full graph snapshot, and the
// caller's assignment map. It is built fresh per call and must be treated
// as read-only by every heuristic.
type Context struct {
	Call        ExternalCall
	Caller      *discovery.Entry // nil when the caller is not in the graph
	Graph       *discovery.Output
	Assignments ir.Assignments
}

// Match is one candidate target: a marked address plus the contract name
// from the graph when the graph knows the address.
type Match struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Result is one heuristic's opinion about a call. Matches is never empty:
// a heuristic with nothing to say returns no Result at all.
type Result struct {
	Matches    []Match
	Confidence int // 0..100, a fixed step function of the match count
}

// Decision is the engine's final answer for one call: which heuristic won,
// its full match list, and its confidence. An unresolved call has no
// Decision rather than a zero-confidence one.
type Decision struct {
	Heuristic  string  `json:"heuristic"`
	Matches    []Match `json:"matches"`
	Confidence int     `json:"confidence"`
}
