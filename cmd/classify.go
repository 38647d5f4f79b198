package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tranvictor/chainguard/config"
	"github.com/tranvictor/chainguard/guard"
	"github.com/tranvictor/chainguard/ui"
	"github.com/tranvictor/chainguard/util"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <address> [address...]",
	Short: "Show which network family one or multiple addresses belong to",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		if config.JSONOutput {
			results := make([]guard.ClassifyResult, 0, len(args))
			for _, address := range args {
				if match, found := guard.Classify(address); found {
					results = append(results, guard.ClassifyResult{Match: &match})
				} else {
					results = append(results, guard.ClassifyResult{})
				}
			}
			enc := json.NewEncoder(u.Writer())
			enc.SetIndent("", "  ")
			enc.Encode(results)
			return
		}

		util.RenderClassifications(u, args)
	},
}

func init() {
	classifyCmd.Flags().
		BoolVarP(&config.JSONOutput, "json", "j", false, "Print the structured matches instead of the table.")
	rootCmd.AddCommand(classifyCmd)
}
