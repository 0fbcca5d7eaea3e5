package routes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/airroutes/core"
)

// ErrSourceUnavailable indicates the dataset could not be opened. The graph
// returned alongside it is empty and usable.
var ErrSourceUnavailable = errors.New("routes: data source unavailable")

// LoadStats summarizes one ingestion pass.
type LoadStats struct {
	Lines      int // lines read
	Accepted   int // lines that produced a new edge
	Duplicates int // valid lines whose edge already existed
	Skipped    int // malformed lines
}

// Option configures Load and LoadFile.
type Option func(*loadOptions)

type loadOptions struct {
	strict bool
	logger *slog.Logger
}

// WithStrict makes the loader classify each rejected line with
// ParseLineStrict and log the reason at debug level. Rejected lines are
// skipped in both modes.
func WithStrict(strict bool) Option {
	return func(o *loadOptions) { o.strict = strict }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) loadOptions {
	o := loadOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Load reads route lines from r into a fresh graph. Every line is data.
// The only error is a read failure; the graph holds whatever was loaded
// before it.
func Load(r io.Reader, opts ...Option) (*core.Graph, LoadStats, error) {
	o := buildOptions(opts)
	g := core.NewGraph()
	stats, err := loadInto(g, r, o)

	return g, stats, err
}

// LoadFile opens path and loads it. A file that cannot be opened yields an
// empty graph and an error wrapping ErrSourceUnavailable.
func LoadFile(path string, opts ...Option) (*core.Graph, LoadStats, error) {
	o := buildOptions(opts)
	g := core.NewGraph()

	f, err := os.Open(path)
	if err != nil {
		return g, LoadStats{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	stats, err := loadInto(g, f, o)
	if err != nil {
		return g, stats, fmt.Errorf("routes: reading %s: %w", path, err)
	}
	o.logger.Info("routes loaded",
		"path", path,
		"lines", stats.Lines,
		"accepted", stats.Accepted,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
		"airports", g.AirportCount(),
	)

	return g, stats, nil
}

func loadInto(g *core.Graph, r io.Reader, o loadOptions) (LoadStats, error) {
	var stats LoadStats
	br := bufio.NewReader(r)

	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Lines++

		rec, ok := ParseLine(line)
		if !ok {
			stats.Skipped++
			if o.strict {
				_, reason := ParseLineStrict(line)
				o.logger.Debug("route line rejected", "line", stats.Lines, "reason", reason)
			}
			continue
		}
		if g.AddEdge(rec.Edge()) {
			stats.Accepted++
		} else {
			stats.Duplicates++
		}
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// Lines have no length limit. A final line without a terminator is
// returned as is; io.EOF is reported only when nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
