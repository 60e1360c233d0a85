package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// options are the persistent flags. Empty values fall back to the environment
// (see internal/config).
type options struct {
	seedFile string
	logFile  string
	logLevel string
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "movielist",
		Short: "Keep a list of movies in the terminal",
		Long: "movielist keeps an in-memory list of movies for one session.\n" +
			"Run it in a terminal for the interactive list, or pipe commands\n" +
			"(add <title>, remove <id>, list) to it for batch use.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return runTUI(cmd.Context(), opts)
			}
			return runScript(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML file with the initial movies")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(newTUICommand(&opts))
	rootCmd.AddCommand(newListCommand(&opts))
	rootCmd.AddCommand(newRunCommand(&opts))

	return rootCmd
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
