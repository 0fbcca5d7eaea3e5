// Package driver runs the interactive shortest-path session: two prompts,
// one query, one rendered answer.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/airroutes/core"
	"github.com/katalvlaran/airroutes/pathfind"
)

// Prompts written before each token is read.
const (
	PromptSource      = "Enter source airport code: "
	PromptDestination = "Enter destination airport code: "
)

// Session binds a loaded graph to an input and an output stream.
type Session struct {
	Graph  *core.Graph
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger

	// Query options applied to every lookup, e.g. a hop limit.
	Query []pathfind.Option
}

// Run prompts for a source and a destination code, each read as one
// whitespace-delimited token, finds the shortest path and renders it.
//
// Each unknown airport is logged as a warning and the query is rendered as
// "No path found".
// A missing token is read as the empty code. Only write failures are
// returned.
func (s *Session) Run() error {
	sc := bufio.NewScanner(s.In)
	sc.Split(bufio.ScanWords)

	if _, err := io.WriteString(s.Out, PromptSource); err != nil {
		return err
	}
	start := nextToken(sc)
	if _, err := io.WriteString(s.Out, PromptDestination); err != nil {
		return err
	}
	end := nextToken(sc)

	path, err := pathfind.ShortestPath(s.Graph, start, end, s.Query...)
	if err != nil {
		s.report(start, end, err)
	}

	return Render(s.Out, start, end, path)
}

func (s *Session) report(start, end string, err error) {
	logger := s.Logger
	if logger == nil {
		return
	}
	known := false
	if errors.Is(err, pathfind.ErrStartNotFound) {
		logger.Warn("start airport not found in graph", "code", start)
		known = true
	}
	if errors.Is(err, pathfind.ErrEndNotFound) {
		logger.Warn("end airport not found in graph", "code", end)
		known = true
	}
	if errors.Is(err, pathfind.ErrNoPath) {
		logger.Info("no route chain", "from", start, "to", end)
		known = true
	}
	if !known {
		logger.Error("shortest path failed", "error", err)
	}
}

func nextToken(sc *bufio.Scanner) string {
	if sc.Scan() {
		return sc.Text()
	}

	return ""
}

// Render writes the result block for one query:
//
//	Shortest path from {start} to {end}:
//	{codes separated by single spaces}
//	Number of stops: {len-2}
//
// or, for an empty path, "No path found from {start} to {end}".
func Render(w io.Writer, start, end string, path pathfind.Path) error {
	var err error
	if path.Empty() {
		_, err = fmt.Fprintf(w, "No path found from %s to %s\n", start, end)
		return err
	}
	_, err = fmt.Fprintf(w, "Shortest path from %s to %s:\n%s\nNumber of stops: %d\n",
		start, end, path, path.Stops())

	return err
}
