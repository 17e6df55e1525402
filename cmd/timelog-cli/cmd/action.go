package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/application/commands"
)

var actionPath string

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Change the state of documents",
	Long: `Start, stop, sync or archive documents selected by --path or by the
lines of stdin.

Examples:
  timelog-cli action start -p ABC-123
  timelog-cli browse --active | timelog-cli action stop`,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the timer on one document, stopping any other",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := actionPaths()
		if err != nil {
			return err
		}
		c := commands.NewStartCommand(GetRepo(), paths[0])
		c.Logger = logger
		result, err := c.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer on every matched document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := actionPaths()
		if err != nil {
			return err
		}
		c := commands.NewStopCommand(GetRepo(), paths...)
		c.Logger = logger
		result, err := c.Execute(cmd.Context())
		if result != nil {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return err
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync-worklog",
	Short: "Upload closed sessions to Jira",
	Long: `Upload the closed sessions of every matched document as Jira worklogs
on the issue named after the file (ABC-123.md logs to ABC-123).
Sessions whose start is already logged remotely are skipped. The first
failed upload stops that document; the others are still synced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := GetTracker()
		if err != nil {
			return err
		}
		paths, err := actionPaths()
		if err != nil {
			return err
		}
		c := commands.NewSyncWorklogCommand(GetRepo(), tracker, paths...)
		c.Logger = logger
		result, err := c.Execute(cmd.Context())
		if result != nil {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return err
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move stopped documents into the archive directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := actionPaths()
		if err != nil {
			return err
		}
		c := commands.NewArchiveCommand(GetRepo(), paths...)
		c.Logger = logger
		result, err := c.Execute(cmd.Context())
		if result != nil {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return err
	},
}

func actionPaths() ([]string, error) {
	paths, err := resolvePaths(actionPath)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no document given: use --path or pipe paths on stdin")
	}
	return paths, nil
}

func init() {
	actionCmd.PersistentFlags().StringVarP(&actionPath, "path", "p", "", "path fragment of the document(s)")
	actionCmd.AddCommand(startCmd, stopCmd, syncCmd, archiveCmd)
	rootCmd.AddCommand(actionCmd)
}
