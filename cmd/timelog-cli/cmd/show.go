package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/adapters/editor"
	"timelog/internal/adapters/render"
	"timelog/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Render a document's body",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := singlePath(args)
		if err != nil {
			return err
		}
		doc, err := commands.NewFindCommand(GetRepo(), path).Execute(cmd.Context())
		if err != nil {
			return err
		}
		out, err := render.Markdown(doc.Body, terminalWidth())
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", doc.Path, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [path]",
	Short: "Open a document in the editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := singlePath(args)
		if err != nil {
			return err
		}
		doc, err := commands.NewFindCommand(GetRepo(), path).Execute(cmd.Context())
		if err != nil {
			return err
		}
		return editor.NewOpener(cfg.Editor).OpenFile(doc.Path)
	},
}

// singlePath takes the argument, else the first line of stdin
func singlePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	paths, err := stdinPaths()
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no document given: pass a path or pipe one on stdin")
	}
	return paths[0], nil
}

func init() {
	rootCmd.AddCommand(showCmd, editCmd)
}
