// Package script drives a movie.Store from line-oriented commands, for
// non-interactive use (pipes, files, tests):
//
//	add <title>     append a movie
//	remove <id>     remove by id (alias: rm)
//	list            print the collection (alias: ls)
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"movielist/internal/movie"
)

var (
	// ErrUnknownCommand is returned for a line whose verb is not recognized.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadID is returned when remove is given a missing or non-integer id.
	ErrBadID = errors.New("invalid movie id")
)

// Runner executes script commands against Store and writes results to Out.
type Runner struct {
	Store  *movie.Store
	Out    io.Writer
	Logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards.
func NewRunner(store *movie.Store, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{Store: store, Out: out, Logger: logger}
}

// Run executes every line of in. It stops at the first failing line and
// returns its error prefixed with the line number.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Exec(ctx, sc.Text()); err != nil {
			r.Logger.Warn("script line failed", "line", lineNo, "error", err)
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (r *Runner) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "add":
		m, err := r.Store.Add(ctx, arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.Out, "added #%d %s\n", m.ID, m.Title)
		return err
	case "remove", "rm":
		id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadID, arg)
		}
		res, err := r.Store.Dispatch(ctx, movie.RemoveMovie{ID: id})
		if err != nil {
			return err
		}
		if !res.Removed {
			_, err = fmt.Fprintf(r.Out, "no movie #%d\n", id)
			return err
		}
		_, err = fmt.Fprintf(r.Out, "removed #%d %s\n", res.Movie.ID, res.Movie.Title)
		return err
	case "list", "ls":
		_, err := fmt.Fprintln(r.Out, RenderTable(r.Store.List()))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
}
