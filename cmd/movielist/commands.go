package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"movielist/internal/script"
	"movielist/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive movie list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), *opts)
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the initial movie list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer s.Close()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), script.RenderTable(s.Store.List()))
			return err
		},
	}
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run add/remove/list commands from a file or stdin",
		Long: "Run reads one command per line:\n\n" +
			"  add <title>\n  remove <id>\n  list\n\n" +
			"Without a file, or with \"-\", commands are read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runScript(cmd.Context(), *opts, in, cmd.OutOrStdout())
		},
	}
}

func runScript(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()
	return script.NewRunner(s.Store, out, s.Logger).Run(ctx, in)
}

func runTUI(ctx context.Context, opts options) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	model := ui.NewAppModel(ctx, s.Store, s.Logger)
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
