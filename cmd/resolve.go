package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hexsight/prospector/cache"
	"github.com/hexsight/prospector/common"
	"github.com/hexsight/prospector/config"
	"github.com/hexsight/prospector/discovery"
	"github.com/hexsight/prospector/ir"
	"github.com/hexsight/prospector/resolver"
	"github.com/hexsight/prospector/ui"
)

// callSpec is one unresolved call in the calls file. IR may carry the
// caller's decompiler output inline; when it is empty the text is read from
// <ir-dir>/<caller hex, lowercase>.ir instead.
type callSpec struct {
	Caller          string `json:"caller"                    yaml:"caller"`
	StorageVariable string `json:"storageVariable,omitempty" yaml:"storageVariable,omitempty"`
	InterfaceType   string `json:"interfaceType,omitempty"   yaml:"interfaceType,omitempty"`
	CalledFunction  string `json:"calledFunction,omitempty"  yaml:"calledFunction,omitempty"`
	IR              string `json:"ir,omitempty"              yaml:"ir,omitempty"`
}

func (c callSpec) externalCall() resolver.ExternalCall {
	return resolver.ExternalCall{
		StorageVariable: c.StorageVariable,
		InterfaceType:   c.InterfaceType,
		CalledFunction:  c.CalledFunction,
	}
}

// callResult pairs a call with its decision for the summary table and the
// JSON export. Decision is nil for unresolved calls.
type callResult struct {
	Caller   string                `json:"caller"`
	Call     resolver.ExternalCall `json:"call"`
	Decision *resolver.Decision    `json:"decision,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve every call in a calls file against the snapshot",
	Long: `Resolve loads the discovery snapshot and a calls file, parses the IR text
of every caller once, then runs the heuristic engine over each call.

Each call is an atomic unit of work; Ctrl-C cancels the batch between
calls. With --verbose the full reasoning trace is shown per call; add
--throttle to deliver trace lines through a suspending channel so a large
batch yields between lines. Resolved decisions are cached under
~/.prospector and skipped on re-runs unless --no-cache is given.`,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	u := ui.NewTerminalUI()

	if config.Throttle {
		// throttled delivery is pointless without a trace to deliver
		config.Verbose = true
	}

	stop := u.Spinner("Loading snapshot...")
	graph, err := discovery.Load(config.SnapshotFile)
	stop()
	if err != nil {
		return err
	}

	calls, err := loadCalls(config.CallsFile)
	if err != nil {
		return err
	}
	if len(calls) == 0 {
		u.Warn("No calls to resolve in %s", config.CallsFile)
		return nil
	}

	assignments, err := parseAllIR(calls)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	engine := resolver.NewEngine()
	results := make([]callResult, 0, len(calls))

	for _, call := range calls {
		if ctx.Err() != nil {
			u.Warn("Batch cancelled, %d of %d calls done", len(results), len(calls))
			break
		}

		u.Section(fmt.Sprintf("%s . %s", call.Caller, call.CalledFunction))

		decision, err := resolveOne(ctx, u, engine, graph, assignments, call)
		if err != nil {
			return err
		}
		results = append(results, callResult{
			Caller:   call.Caller,
			Call:     call.externalCall(),
			Decision: decision,
		})
		printDecision(u, decision)
	}

	printSummary(u, results)

	if config.JSONOutputFile != "" {
		if err := writeJSON(config.JSONOutputFile, results); err != nil {
			return err
		}
		u.Info("Decisions written to %s", config.JSONOutputFile)
	}
	return nil
}

// resolveOne runs the engine for a single call, honoring the decision cache
// and the configured trace mode.
func resolveOne(
	ctx context.Context,
	u ui.UI,
	engine *resolver.Engine,
	graph *discovery.Output,
	assignments map[string]ir.Assignments,
	call callSpec,
) (*resolver.Decision, error) {
	key := cacheKey(call)
	if !config.NoCache {
		if cached, found := cache.GetCache(key); found {
			var decision resolver.Decision
			if err := json.Unmarshal([]byte(cached), &decision); err == nil {
				u.Info("(cached)")
				return &decision, nil
			}
		}
	}

	rc := &resolver.Context{
		Call:        call.externalCall(),
		Caller:      graph.ContractByAddress(call.Caller),
		Graph:       graph,
		Assignments: assignments[common.AddressKey(call.Caller)],
	}

	var decision *resolver.Decision
	var err error
	switch {
	case config.Verbose && config.Throttle:
		sink, lines := resolver.NewThrottledSink()
		done := make(chan struct{})
		trace := u.Indent()
		go func() {
			defer close(done)
			for line := range lines {
				trace.Info("%s", line)
			}
		}()
		decision, err = engine.Resolve(ctx, rc, sink)
		close(sink.C)
		<-done
	case config.Verbose:
		decision, err = engine.Resolve(ctx, rc, resolver.WriterSink{W: u.Indent().Writer()})
	default:
		decision, err = engine.Resolve(ctx, rc, nil)
	}
	if err != nil {
		return nil, err
	}

	if decision != nil {
		if encoded, jerr := json.Marshal(decision); jerr == nil {
			// cache write failures are not fatal for a batch run
			_ = cache.SetCache(key, string(encoded))
		}
	}
	return decision, nil
}

func printDecision(u ui.UI, decision *resolver.Decision) {
	if decision == nil {
		u.Error("unresolved")
		return
	}
	text := fmt.Sprintf("%s resolved %d target(s), confidence %d",
		decision.Heuristic, len(decision.Matches), decision.Confidence)
	if decision.Confidence >= 90 {
		u.Success("%s", text)
	} else {
		u.Warn("%s", text)
	}
	for _, m := range decision.Matches {
		name := m.Name
		if name == "" {
			name = "unknown"
		}
		u.Indent().Info("%s: %s", m.Address, name)
	}
}

func printSummary(u ui.UI, results []callResult) {
	u.Section("Summary")
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		winner := "-"
		confidence := "-"
		target := u.Style(ui.StyledText{Text: "unresolved", Severity: ui.SeverityError})
		if d := r.Decision; d != nil {
			winner = d.Heuristic
			confidence = fmt.Sprintf("%d", d.Confidence)
			severity := ui.SeveritySuccess
			if d.Confidence < 90 {
				severity = ui.SeverityWarn
			}
			first := d.Matches[0]
			text := first.Address
			if first.Name != "" {
				text = fmt.Sprintf("%s (%s)", first.Name, first.Address)
			}
			if len(d.Matches) > 1 {
				text = fmt.Sprintf("%s +%d more", text, len(d.Matches)-1)
			}
			target = u.Style(ui.StyledText{Text: text, Severity: severity})
		}
		rows = append(rows, []string{r.Caller, r.Call.CalledFunction, winner, confidence, target})
	}
	u.Table([]string{"Caller", "Function", "Winner", "Confidence", "Target"}, rows)
}

// parseAllIR builds the assignment map of every distinct caller up front,
// in parallel. The maps are read-only afterwards, shared by every
// resolution of that caller's calls.
func parseAllIR(calls []callSpec) (map[string]ir.Assignments, error) {
	type irSource struct {
		caller string
		inline string
	}
	sources := map[string]irSource{}
	for _, call := range calls {
		key := common.AddressKey(call.Caller)
		src, seen := sources[key]
		if !seen {
			src = irSource{caller: call.Caller}
		}
		if call.IR != "" {
			src.inline = call.IR
		}
		sources[key] = src
	}

	var mu sync.Mutex
	result := map[string]ir.Assignments{}
	var parsers []func() error
	for key, src := range sources {
		key, src := key, src
		parsers = append(parsers, func() error {
			text := src.inline
			if text == "" {
				content, err := os.ReadFile(irFileFor(src.caller))
				if err != nil {
					if os.IsNotExist(err) {
						// no IR for this caller, the chain heuristic
						// simply has no evidence
						return nil
					}
					return fmt.Errorf("reading IR of %s: %w", src.caller, err)
				}
				text = string(content)
			}
			parsed := ir.ParseAssignments(text)
			mu.Lock()
			result[key] = parsed
			mu.Unlock()
			return nil
		})
	}
	if err := common.RunParallel(parsers...); err != nil {
		return nil, err
	}
	return result, nil
}

// irFileFor maps a caller address to its IR file: the lowercase hex part
// with an .ir extension, e.g. ir/0xa39739ef8b0231dbfa0dcda07d7e29faabcf4bb2.ir
func irFileFor(caller string) string {
	hex := strings.ToLower(strings.TrimPrefix(common.AddressKey(caller), common.AddressMark))
	return filepath.Join(config.IRDir, hex+".ir")
}

func loadCalls(path string) ([]callSpec, error) {
	if path == "" {
		return nil, fmt.Errorf("no calls file given, use --calls")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calls file %s: %w", path, err)
	}
	var calls []callSpec
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(content, &calls)
	} else {
		err = json.Unmarshal(content, &calls)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing calls file %s: %w", path, err)
	}
	return calls, nil
}

func cacheKey(c callSpec) string {
	return strings.Join([]string{
		"resolve",
		common.AddressKey(c.Caller),
		c.StorageVariable,
		c.InterfaceType,
		c.CalledFunction,
	}, "|")
}

func writeJSON(path string, results []callResult) error {
	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

func init() {
	resolveCmd.Flags().StringVarP(&config.CallsFile, "calls", "c", "", "calls file (JSON or YAML array of unresolved calls)")
	resolveCmd.Flags().StringVarP(&config.IRDir, "ir-dir", "i", "ir", "directory holding per-caller IR files")
	resolveCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "show the reasoning trace of every call")
	resolveCmd.Flags().BoolVar(&config.Throttle, "throttle", false, "deliver trace lines through a suspending channel (implies --verbose)")
	resolveCmd.Flags().BoolVar(&config.NoCache, "no-cache", false, "ignore and overwrite cached decisions")
	resolveCmd.Flags().StringVarP(&config.JSONOutputFile, "json", "j", "", "write decisions to this JSON file")
	rootCmd.AddCommand(resolveCmd)
}
