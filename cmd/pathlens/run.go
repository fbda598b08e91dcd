package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leapmux/pathlens/internal/cleaner"
	"github.com/leapmux/pathlens/internal/execqueue"
)

// runCommand executes a child command under a PTY, mirrors its output to
// stdout while scanning it for path references, and prints the resolved
// locations once the child exits. Returns the child's exit code.
func runCommand(args []string) (int, error) {
	fs := flag.NewFlagSet("pathlens run", flag.ExitOnError)
	o := defineFlags(fs)
	metricsAddr := fs.String("metrics-addr", "", "listen address for Prometheus metrics (empty: disabled)")
	if err := fs.Parse(args); err != nil {
		return 1, err
	}
	if fs.NArg() == 0 {
		return 1, fmt.Errorf("run: command required")
	}

	c, err := o.buildCleaner()
	if err != nil {
		return 1, err
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	cmd := exec.Command(fs.Arg(0), fs.Args()[1:]...)
	cmd.Dir = o.wd
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 1, fmt.Errorf("start pty: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	q := execqueue.New()
	defer q.Close()

	var hits []string
	scanErr := scanLines(ptmx, c, q, o.wd, os.Stdout, func(res cleaner.Result) {
		hits = append(hits, formatResult(res))
	})
	if scanErr != nil {
		// The PTY read fails with EIO once the child exits; nothing to do
		// beyond noting it.
		slog.Debug("pty read ended", "error", scanErr)
	}

	code := 0
	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else {
			return 1, fmt.Errorf("wait: %w", err)
		}
	}

	if len(hits) > 0 {
		fmt.Fprintln(os.Stderr)
		for _, h := range hits {
			fmt.Fprintln(os.Stderr, h)
		}
	}
	return code, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("metrics listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server", "error", err)
	}
}
