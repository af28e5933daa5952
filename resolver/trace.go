package resolver

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TraceSink receives the engine's human-readable reasoning, one line per
// heuristic attempted plus a final winner line. Emission may suspend (see
// ThrottledSink) but must never change what the engine decides: the same
// context produces the same decision through any sink.
type TraceSink interface {
	Emit(ctx context.Context, line string) error
}

// NopSink discards every trace line.
type NopSink struct{}

func (NopSink) Emit(context.Context, string) error { return nil }

// WriterSink emits each trace line immediately and synchronously.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Emit(_ context.Context, line string) error {
	_, err := fmt.Fprintln(s.W, line)
	return err
}

// ThrottledSink hands each trace line to a consumer over an unbuffered
// channel. Emit blocks until the consumer takes the line, yielding control
// between lines so a high-volume resolution pass cannot starve a
// concurrently updating display. Emit honors ctx cancellation while
// blocked.
type ThrottledSink struct {
	C chan<- string
}

// NewThrottledSink returns a ThrottledSink and the receive side of its
// channel. The caller must drain the channel for resolution to make
// progress.
func NewThrottledSink() (ThrottledSink, <-chan string) {
	ch := make(chan string)
	return ThrottledSink{C: ch}, ch
}

func (s ThrottledSink) Emit(ctx context.Context, line string) error {
	select {
	case s.C <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// matchList renders matches for a trace line: "Vault (eth:0xabc...)" when
// the name is known, the bare address otherwise.
func matchList(matches []Match) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		if m.Name != "" {
			parts[i] = fmt.Sprintf("%s (%s)", m.Name, m.Address)
		} else {
			parts[i] = m.Address
		}
	}
	return strings.Join(parts, ", ")
}

func attemptLine(name string, r *Result) string {
	if r == nil {
		return fmt.Sprintf("%s: no result", name)
	}
	noun := "matches"
	if len(r.Matches) == 1 {
		noun = "match"
	}
	return fmt.Sprintf("%s: %d %s [%s], confidence %d",
		name, len(r.Matches), noun, matchList(r.Matches), r.Confidence)
}

func winnerLine(d *Decision) string {
	if d == nil {
		return "no winner"
	}
	return fmt.Sprintf("winner: %s [%s], confidence %d",
		d.Heuristic, matchList(d.Matches), d.Confidence)
}
