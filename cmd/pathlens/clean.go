package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/leapmux/pathlens/internal/cleaner"
	"github.com/leapmux/pathlens/internal/config"
	"github.com/leapmux/pathlens/internal/execqueue"
	"github.com/leapmux/pathlens/internal/fspolicy"
	"github.com/leapmux/pathlens/internal/id"
	"github.com/leapmux/pathlens/internal/logging"
	"github.com/leapmux/pathlens/internal/metrics"
	"github.com/leapmux/pathlens/internal/scan"
)

// cliOptions holds the flags shared by the clean and run modes.
type cliOptions struct {
	wd         string
	configPath string
	logLevel   string
	ignore     string
	probeDelay time.Duration
}

// defineFlags registers the shared flags on fs. Call fs.Parse separately.
func defineFlags(fs *flag.FlagSet) *cliOptions {
	o := &cliOptions{}
	fs.StringVar(&o.wd, "wd", "", "working directory for relative tokens (default: current directory)")
	fs.StringVar(&o.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	fs.StringVar(&o.ignore, "ignore", "", "comma-separated path prefixes to ignore; overrides config")
	fs.DurationVar(&o.probeDelay, "probe-delay", -1, "settling delay before each existence probe; overrides config")
	return o
}

// buildCleaner loads configuration, applies flag overrides and wires the
// cleaner up against the real filesystem.
func (o *cliOptions) buildCleaner() (*cleaner.Cleaner, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.ignore != "" {
		cfg.IgnoredPrefixes = config.SplitPrefixes(o.ignore)
	}
	if o.probeDelay >= 0 {
		cfg.ProbeDelay = o.probeDelay
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logging.SetLevel(lvl)

	if o.wd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		o.wd = wd
	}

	return cleaner.New(fspolicy.OS{}, cleaner.Options{
		IgnoredPrefixes: cfg.IgnoredPrefixes,
		ProbeDelay:      cfg.ProbeDelay,
	}), nil
}

// runClean resolves tokens given as arguments, or scans stdin line by line
// when no tokens are given. Resolved locations are printed one per line as
// path[:line[:column]].
func runClean(args []string) error {
	fs := flag.NewFlagSet("pathlens", flag.ExitOnError)
	o := defineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := o.buildCleaner()
	if err != nil {
		return err
	}

	q := execqueue.New()
	defer q.Close()

	if fs.NArg() > 0 {
		missed := 0
		for _, token := range fs.Args() {
			res := <-c.Go(q, cleaner.Request{Token: token, WorkingDir: o.wd})
			if !res.OK() {
				missed++
				fmt.Fprintf(os.Stderr, "%s: no match\n", token)
				continue
			}
			fmt.Println(formatResult(res))
		}
		if missed > 0 {
			return fmt.Errorf("%d token(s) did not resolve", missed)
		}
		return nil
	}

	return scanLines(os.Stdin, c, q, o.wd, nil, func(res cleaner.Result) {
		fmt.Println(formatResult(res))
	})
}

// scanLines reads r line by line, scans each line for path candidates and
// reports each newly resolved location through onHit. When echo is
// non-nil, every line is mirrored to it before scanning.
func scanLines(r io.Reader, c *cleaner.Cleaner, q *execqueue.Queue, wd string, echo io.Writer, onHit func(cleaner.Result)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	seen := make(map[string]bool)
	for scanner.Scan() {
		line := scanner.Text()
		if echo != nil {
			fmt.Fprintln(echo, line)
		}
		metrics.ScannedLines.Inc()

		scanID := id.Generate()
		for _, cand := range scan.Line(line) {
			res := <-c.Go(q, cleaner.Request{Token: cand.Token, Suffix: cand.Suffix, WorkingDir: wd})
			if !res.OK() {
				continue
			}
			key := formatResult(res)
			if seen[key] {
				continue
			}
			seen[key] = true
			slog.Debug("path resolved",
				"scan_id", scanID,
				"token", cand.Token,
				"path", res.Path,
			)
			onHit(res)
		}
	}
	return scanner.Err()
}

// formatResult renders a result as path[:line[:column]].
func formatResult(res cleaner.Result) string {
	s := res.Path
	if res.Line != "" {
		s += ":" + res.Line
		if res.Column != "" {
			s += ":" + res.Column
		}
	}
	return s
}
