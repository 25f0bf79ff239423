package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRootCmd builds the linkpager command tree. Running it without a
// subcommand starts the API server.
func newRootCmd(logger *slog.Logger) *cobra.Command {
	serve := newServeCmd(logger)

	root := &cobra.Command{
		Use:           "linkpager",
		Short:         "Paginated customer, campaign, message and event API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd(logger))

	return root
}
