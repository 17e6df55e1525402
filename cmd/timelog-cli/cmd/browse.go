package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/adapters/render"
	"timelog/internal/application/commands"
)

var browseActive bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List document paths",
	Long: `Print the path of every document, one per line. The output is meant to
be piped into a fuzzy finder and back into action or query.

Examples:
  timelog-cli browse --active | timelog-cli action stop
  timelog-cli browse | fzf | timelog-cli action start`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := commands.NewQueryCommand(GetRepo())
		q.Logger = logger
		q.ActiveOnly = browseActive
		result, err := q.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Paths(result.Documents))
		return nil
	},
}

func init() {
	browseCmd.Flags().BoolVarP(&browseActive, "active", "a", false, "only documents with a running timer")
	rootCmd.AddCommand(browseCmd)
}
