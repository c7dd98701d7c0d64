package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/curlparse/packages/core/grammar"
	"github.com/spf13/cobra"
)

var ruleFlag string

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the parse tree of a curl command",
	Long: `Print the parse tree the grammar builds for a file, one node per line
with its rule, line:column and matched text.

--rule matches the whole input against a single rule instead of a full
command, which helps when checking how a fragment is read.

Examples:
  curlparse tree request.curl
  echo "-H 'Accept: */*'" | curlparse tree - --rule header-flag`,
	Args: exactArgs(1),
	RunE: treeCommand,
}

func init() {
	treeCmd.Flags().StringVarP(&ruleFlag, "rule", "r", grammar.RuleCommand.String(),
		"Rule to match: "+strings.Join(grammar.RuleNames(), ", "))
}

func treeCommand(cmd *cobra.Command, args []string) error {
	rule, ok := grammar.ParseRule(ruleFlag)
	if !ok {
		return withExitCode(ExitUsageError, fmt.Errorf("unknown rule %q (expected one of %s)",
			ruleFlag, strings.Join(grammar.RuleNames(), ", ")))
	}

	input, err := readInput(cmd, args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to read: %v\n", err)
		return reported(ExitFailure, err)
	}

	node, err := grammar.MatchRule(rule, input)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return reported(ExitParseError, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), node.String())
	return nil
}
