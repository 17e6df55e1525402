package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/adapters/render"
	"timelog/internal/application/commands"
	"timelog/internal/domain"
)

var fetchBase string

var fetchCmd = &cobra.Command{
	Use:   "fetch <issue-key>",
	Short: "Create a document from a Jira issue",
	Long: `Fetch an issue from Jira and create <root>/[<path>/]<PROJECT>/<KEY>.md
with its summary, description, creator and original estimate. An
existing document is never overwritten.

Examples:
  timelog-cli fetch ABC-123
  timelog-cli fetch ABC-123 -p work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := GetTracker()
		if err != nil {
			return err
		}
		result, err := commands.NewFetchCommand(GetRepo(), tracker, args[0], fetchBase).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		fmt.Fprintln(cmd.OutOrStdout(), render.QueryReport([]domain.Document{result.Document}))
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchBase, "path", "p", "", "directory under the root to create the document in")
	rootCmd.AddCommand(fetchCmd)
}
