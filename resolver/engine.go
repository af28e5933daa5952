// Package resolver infers which discovered contract an interface-typed
// external call resolves to. A set of independent heuristics each produce a
// confidence-scored guess from shared read-only evidence; the engine ranks
// the guesses and reports the winner together with a full reasoning trace
// so a human auditor can verify or override the outcome.
package resolver

import (
	"context"
	"sort"
)

// Engine holds an ordered list of registered heuristics. The engine itself
// is long-lived and stateless across calls: everything per-call lives in
// the Context passed to Resolve.
type Engine struct {
	heuristics []Heuristic
}

// NewEngine creates an engine with the given heuristics, or with
// DefaultHeuristics when none are given.
func NewEngine(heuristics ...Heuristic) *Engine {
	if len(heuristics) == 0 {
		heuristics = DefaultHeuristics()
	}
	return &Engine{heuristics: heuristics}
}

// Register appends a heuristic to the end of the registration order.
func (e *Engine) Register(h Heuristic) {
	e.heuristics = append(e.heuristics, h)
}

// Resolve runs every registered heuristic against rc in registration
// order, ranks the non-nil results by confidence, and returns the winner.
// A nil decision with a nil error means the call is unresolved; the caller
// is expected to record it as such rather than guess.
//
// The sort is stable, so heuristics that tie on confidence are won by the
// one registered earliest. This makes registration order an explicit
// priority among equally-confident strategies.
//
// One trace line is emitted per heuristic attempted and one for the
// winner. The only error Resolve can return comes from sink emission
// (a throttled sink whose context was cancelled between lines).
func (e *Engine) Resolve(ctx context.Context, rc *Context, sink TraceSink) (*Decision, error) {
	if sink == nil {
		sink = NopSink{}
	}

	type attempt struct {
		heuristic Heuristic
		result    *Result
	}
	var results []attempt
	for _, h := range e.heuristics {
		r := h.Apply(rc)
		if err := sink.Emit(ctx, attemptLine(h.Name(), r)); err != nil {
			return nil, err
		}
		if r != nil {
			results = append(results, attempt{heuristic: h, result: r})
		}
	}

	if len(results) == 0 {
		if err := sink.Emit(ctx, winnerLine(nil)); err != nil {
			return nil, err
		}
		return nil, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].result.Confidence > results[j].result.Confidence
	})

	winner := results[0]
	decision := &Decision{
		Heuristic:  winner.heuristic.Name(),
		Matches:    winner.result.Matches,
		Confidence: winner.result.Confidence,
	}
	if err := sink.Emit(ctx, winnerLine(decision)); err != nil {
		return nil, err
	}
	return decision, nil
}
