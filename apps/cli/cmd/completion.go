package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators writes the completion script for each shell.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for curlparse to stdout.

Examples:
  source <(curlparse completion bash)
  curlparse completion zsh > "${fpath[1]}/_curlparse"
  curlparse completion fish > ~/.config/fish/completions/curlparse.fish
  curlparse completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(exactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout()); err != nil {
			return withExitCode(ExitFailure, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
