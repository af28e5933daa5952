package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexsight/prospector/config"
	"github.com/hexsight/prospector/discovery"
)

var whoisCmd = &cobra.Command{
	Use:   "whois",
	Short: "Find at max 10 discovered entries matching a name or address",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := discovery.Load(config.SnapshotFile)
		if err != nil {
			return err
		}
		para := strings.Join(args, " ")
		entries, scores := graph.Search(para)
		if len(entries) == 0 {
			fmt.Printf("Nothing in the snapshot matches '%s'\n", para)
			return nil
		}
		fmt.Printf("%12s  Entries\n", "Scores")
		fmt.Printf("-----------------------\n")
		for i, e := range entries {
			name := e.Name
			if name == "" {
				name = "unknown"
			}
			fmt.Printf("%12d  %s: %s (%s)\n", scores[i], e.Address, name, e.Type)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}
