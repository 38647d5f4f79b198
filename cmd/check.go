package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/chainguard/config"
	"github.com/tranvictor/chainguard/guard"
	"github.com/tranvictor/chainguard/ui"
	"github.com/tranvictor/chainguard/util"
)

var checkCmd = &cobra.Command{
	Use:   "check <address>",
	Short: "Check a destination address against the current chain",
	Long: `Classifies the destination address and renders a compatibility verdict
for the chain given via --chain.

On an incompatible destination you are asked whether to proceed anyway;
declining exits with status 1 so the command can gate scripts and git-style
hooks. Use --yes to skip the prompt, --json for the raw verdict.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		verdict := guard.Evaluate(config.ChainID, args[0])
		if verdict == nil {
			u.Info("No destination address to check.")
			return
		}

		if config.JSONOutput {
			enc := json.NewEncoder(u.Writer())
			enc.SetIndent("", "  ")
			enc.Encode(verdict)
		} else {
			util.RenderVerdict(u, verdict)
		}

		if verdict.Kind != guard.Incompatible || config.AssumeYes {
			return
		}
		if !u.Confirm("Proceed with this destination anyway?", false) {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().
		BoolVarP(&config.AssumeYes, "yes", "y", false, "Don't prompt on incompatible destinations.")
	checkCmd.Flags().
		BoolVarP(&config.JSONOutput, "json", "j", false, "Print the structured verdict instead of the panel.")
	rootCmd.AddCommand(checkCmd)
}
