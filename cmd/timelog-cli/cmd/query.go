package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/adapters/render"
	"timelog/internal/application/commands"
)

var queryFlags struct {
	tags      []string
	path      string
	all       bool
	pathsOnly bool
}

var queryCmd = &cobra.Command{
	Use:   "query [start-date] [end-date]",
	Short: "Report worked time",
	Long: `Report the worklog of matching documents with a subtotal per document
and a grand total.

Documents are selected by --tags, else by --path (or the first line of
stdin), else all of them. Dates are YYYY-MM-DD or one of today,
yesterday, month, biweekly, friday. The start date defaults to today,
except for a path query, which reports the whole worklog unless a date
is given. Only sessions strictly inside the window are counted.

Examples:
  timelog-cli query                        # today
  timelog-cli query -t backend month       # this month, tagged backend
  timelog-cli query -p ABC-123             # whole worklog of ABC-123
  timelog-cli query 2023-04-01 2023-04-30`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := newQuery(args, queryFlags.tags, queryFlags.path, queryFlags.all)
		if err != nil {
			return err
		}
		result, err := q.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if queryFlags.pathsOnly {
			fmt.Fprint(cmd.OutOrStdout(), render.Paths(result.Documents))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.QueryReport(result.Documents))
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags [start-date] [end-date]",
	Short: "Report worked time per tag",
	Long: `Sum the worked time of matching documents per tag. Selection and dates
work as in query. Ticket key tags such as ABC-123 are left out of the
rows, their time still counts in the total.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := newQuery(args, queryFlags.tags, queryFlags.path, queryFlags.all)
		if err != nil {
			return err
		}
		result, err := q.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.TagsReport(result.TagsReport()))
		return nil
	},
}

func newQuery(args, tags []string, path string, all bool) (*commands.QueryCommand, error) {
	q := commands.NewQueryCommand(GetRepo())
	q.Logger = logger
	q.Tags = tags
	if len(tags) == 0 {
		paths, err := resolvePaths(path)
		if err != nil {
			return nil, err
		}
		if len(paths) > 0 {
			q.Paths = paths[:1]
		}
	}
	q.StartDate, q.EndDate = queryDates(args, len(q.Tags) > 0, len(q.Paths) > 0, all)
	return q, nil
}

// queryDates picks the window tokens: explicit arguments first, no window
// for --all or a bare path query, today otherwise.
func queryDates(args []string, byTags, byPath, all bool) (start, end string) {
	switch {
	case all:
		return "", ""
	case len(args) > 0:
		start = args[0]
		if len(args) > 1 {
			end = args[1]
		}
		return start, end
	case byPath && !byTags:
		return "", ""
	default:
		return "today", ""
	}
}

func init() {
	for _, c := range []*cobra.Command{queryCmd, tagsCmd} {
		c.Flags().StringSliceVarP(&queryFlags.tags, "tags", "t", nil, "select documents carrying any of these tags")
		c.Flags().StringVarP(&queryFlags.path, "path", "p", "", "select documents whose path contains this fragment")
		c.Flags().BoolVarP(&queryFlags.all, "all", "a", false, "ignore dates and report every session")
		rootCmd.AddCommand(c)
	}
	queryCmd.Flags().BoolVar(&queryFlags.pathsOnly, "paths", false, "print matching paths instead of the report")
}
