// Package commands implements the CLI commands for stay.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/stay/internal/build"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/positions"
)

// CLI represents the command line interface for stay.
type CLI struct {
	app     Application
	logger  ports.Logger
	now     func() time.Time
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Configure(path string) error
	List(ctx context.Context) []positions.Entry
	Forget(ctx context.Context, path string) (int, error)
	Rename(ctx context.Context, oldPath, newPath string) (int, error)
	Prune(ctx context.Context, limit *uint) (int, error)
	Watch(ctx context.Context, root string) error
}

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithClock overrides the clock used to render position ages.
func WithClock(now func() time.Time) Option {
	return func(c *CLI) {
		c.now = now
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stay",
		Short:         "Inspect and maintain saved reading positions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		now:     time.Now,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Settings file to load instead of stay.yaml")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write log records as JSON")
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newForgetCmd())
	rootCmd.AddCommand(c.newRenameCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(*cobra.Command, []string) error {
	if l, ok := c.logger.(jsonLogger); ok {
		l.SetJSON(c.jsonLogs)
	}
	return c.app.Configure(c.configPath)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
