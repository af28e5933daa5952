// Package ir extracts variable-assignment facts from the line-oriented
// text the decompiler emits for each contract.
package ir

import (
	"bufio"
	"regexp"
	"strings"
)

// MaxChainHops bounds every walk over an assignment chain. The map can
// legally contain a cycle (e.g. two variables swapped through a temporary),
// so the walk must have a hard cap rather than running until it stalls.
const MaxChainHops = 10

// assignLine matches one decompiled assignment of the shape
//
//	troveManagerCached(ITroveManager) := troveManager(ITroveManager)
//
// i.e. identifier, parenthesized type, ":=", identifier, and the opening
// paren of the source's own type annotation. Anything else on a line is not
// an assignment and is skipped.
var assignLine = regexp.MustCompile(`^\s*([A-Za-z_$][A-Za-z0-9_$]*)\([^)]*\)\s*:=\s*([A-Za-z_$][A-Za-z0-9_$]*)\(`)

// Assignments maps a locally-assigned variable name to the variable it was
// most recently assigned from. It deliberately keeps only the latest
// assignment per target: the pattern being chased is "cache a state variable
// in a local", not general dataflow.
type Assignments map[string]string

// ParseAssignments scans the IR text of one caller contract and builds its
// assignment map. Lines that do not match the assignment shape are ignored;
// most IR lines are not assignments and that is not an error.
func ParseAssignments(text string) Assignments {
	result := Assignments{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		m := assignLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		result[m[1]] = m[2]
	}
	return result
}

// Chase follows the chain from name (target to its recorded source) and
// returns the last name reached. The walk stops as soon as the current name
// has no entry, or after MaxChainHops hops; hitting the cap is not an error,
// the name reached at that point is the answer.
func (a Assignments) Chase(name string) string {
	current := name
	for hops := 0; hops < MaxChainHops; hops++ {
		source, ok := a[current]
		if !ok {
			break
		}
		current = source
	}
	return current
}
