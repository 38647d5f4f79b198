package cmd

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/tranvictor/chainguard/chains"
	"github.com/tranvictor/chainguard/ui"
)

const maxChainMatches = 10

var chainsCmd = &cobra.Command{
	Use:   "chains [query]",
	Short: "List the known EVM chains or fuzzy-search them by name",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		source := chains.NewFuzzySource()

		if len(args) == 0 {
			rows := make([][]string, 0, source.Len())
			for _, desc := range source {
				rows = append(rows, []string{desc.ID, desc.Name})
			}
			u.Table([]string{"Chain ID", "Name"}, rows)
			return
		}

		query := strings.Join(args, " ")
		matches := fuzzy.FindFrom(query, source)
		if len(matches) == 0 {
			u.Warn("No known chain matches '%s'", query)
			return
		}

		rows := [][]string{}
		for i, m := range matches {
			if i >= maxChainMatches {
				break
			}
			desc := source[m.Index]
			rows = append(rows, []string{desc.ID, desc.Name})
		}
		u.Table([]string{"Chain ID", "Name"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(chainsCmd)
}
