package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexsight/prospector/config"
	"github.com/hexsight/prospector/discovery"
	"github.com/hexsight/prospector/index"
)

// findCmd searches contracts full-text: names and ABI function names both
// count, so "find liquidate" returns every contract exposing liquidate().
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Full-text search discovered contracts by name or function",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := discovery.Load(config.SnapshotFile)
		if err != nil {
			return err
		}
		idx, err := index.New(graph)
		if err != nil {
			return err
		}
		defer idx.Close()

		para := strings.Join(args, " ")
		docs, scores := idx.Search(para)
		if len(docs) == 0 {
			fmt.Printf("No contract matches '%s'\n", para)
			return nil
		}
		fmt.Printf("%12s  Contracts\n", "Scores")
		fmt.Printf("-----------------------\n")
		for i, doc := range docs {
			name := doc.Name
			if name == "" {
				name = "unknown"
			}
			fmt.Printf("%12d  %s: %s\n", scores[i], doc.Address, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
