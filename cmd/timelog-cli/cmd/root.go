package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"timelog/internal/adapters/filesystem"
	"timelog/internal/adapters/jira"
	"timelog/internal/config"
	"timelog/internal/ports"
)

var (
	rootPath string
	verbose  bool

	cfg    *config.Config
	repo   ports.DocumentRepository
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "timelog-cli",
	Short: "Track time on markdown documents",
	Long: `timelog-cli tracks work sessions in the front matter of markdown
documents and reports on them.

Each document keeps a worklog of "start, end" timestamps. Documents are
selected by tag or by any fragment of their path; when stdin is not a
terminal, its lines are used as paths.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if rootPath != "" {
			cfg.Root = rootPath
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = config.NewLogger(os.Stderr, level)
		slog.SetDefault(logger)

		repo = filesystem.NewRepository(cfg.Root)
		logger.Debug("repository ready", "root", repo.Root())
		return nil
	},
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "document root (default $DATA_ROOT or "+config.DefaultRoot+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// GetRepo returns the initialized repository
func GetRepo() ports.DocumentRepository {
	return repo
}

var errNoTracker = errors.New("jira is not configured: set JIRA_HOST, JIRA_USER and JIRA_PASS")

// GetTracker returns a Jira client built from the loaded config
func GetTracker() (ports.TicketTracker, error) {
	if !cfg.Jira.Configured() {
		return nil, errNoTracker
	}
	return jira.NewClient(cfg.Jira.Host, cfg.Jira.User, cfg.Jira.Pass), nil
}
