package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexsight/prospector/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prospector",
	Short: "Resolve call targets over a discovered contract graph",
	Long: `Prospector works on the snapshot of an already-discovered contract graph
and figures out which concrete contract each interface-typed external call
resolves to.

When the decompiler finds a call like ITroveManager(x).liquidate(), the
address behind x is rarely a literal: it is a cached local copy of a state
variable, an interface name that follows a convention, or just a function
only one known contract exposes. Prospector runs a set of independent
heuristics over each unresolved call, ranks their guesses by confidence and
reports the winner together with a full reasoning trace, so an auditor can
always see why a call was resolved a given way.

Commands:

	1. resolve runs the heuristics over every call in a calls file and
	prints (or exports) the decisions.

	2. whois and find look contracts up in the snapshot by fuzzy name or
	full-text search, which helps when reviewing a trace by hand.

The snapshot and calls files may be JSON or YAML; prospector never touches
the network, everything it knows comes from the snapshot.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.SnapshotFile, "snapshot", "s", "discovery.json", "discovery snapshot file (JSON or YAML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
