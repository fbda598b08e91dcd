// Package cleaner turns noisy text fragments captured from terminal output
// (compiler errors, diff hunks, stack traces) into verified absolute
// filesystem paths with optional line/column locators.
package cleaner

import (
	"regexp"
	"slices"
	"time"

	"github.com/leapmux/pathlens/internal/execqueue"
	"github.com/leapmux/pathlens/internal/fspolicy"
	"github.com/leapmux/pathlens/internal/metrics"
)

// Request carries the immutable inputs of one cleaning operation.
type Request struct {
	Token      string // raw fragment believed to reference a path
	Suffix     string // text that followed the token in the output stream
	WorkingDir string // absolute directory anchoring relative tokens
}

// Result is the outcome of one cleaning operation. Path is empty when the
// token could not be resolved. Line and Column hold the locator digits as
// verbatim text (leading zeros preserved); Column is never set without
// Line, and both always come from a single matched pattern.
type Result struct {
	Path   string
	Line   string
	Column string
}

// OK reports whether the token resolved to a verified local path.
func (r Result) OK() bool { return r.Path != "" }

// diffPrefix matches the "a/" or "b/" marker that unified diff output
// prepends to paths.
var diffPrefix = regexp.MustCompile(`^[ab]/`)

// Options configures a Cleaner.
type Options struct {
	// IgnoredPrefixes lists path prefixes that must never be offered to
	// the user, typically network-backed mounts.
	IgnoredPrefixes []string
	// ProbeDelay is slept before each existence probe. See Cleaner.
	ProbeDelay time.Duration
}

// Cleaner runs the strip/extract/resolve pipeline. It holds an immutable
// snapshot of the ignored-prefix configuration taken at construction and
// no other state, so instances are safe for concurrent use and share
// nothing with each other.
type Cleaner struct {
	policy     fspolicy.Policy
	prefixes   []string
	probeDelay time.Duration
}

// New creates a Cleaner probing the filesystem through policy.
func New(policy fspolicy.Policy, opts Options) *Cleaner {
	return &Cleaner{
		policy:     policy,
		prefixes:   slices.Clone(opts.IgnoredPrefixes),
		probeDelay: opts.ProbeDelay,
	}
}

// Clean resolves one token. It first tries the token as-is; if that fails
// and the token starts with a diff-style "a/" or "b/" prefix, it retries
// exactly once with the two-character prefix stripped. The fallback never
// recurses, even when the stripped token again starts with "a/" or "b/".
func (c *Cleaner) Clean(req Request) Result {
	if res, ok := c.attempt(req.Token, req.Suffix, req.WorkingDir); ok {
		metrics.CleanRequests.WithLabelValues("ok").Inc()
		return res
	}
	if m := diffPrefix.FindString(req.Token); m != "" {
		metrics.DiffFallbacks.Inc()
		if res, ok := c.attempt(req.Token[len(m):], req.Suffix, req.WorkingDir); ok {
			metrics.CleanRequests.WithLabelValues("ok").Inc()
			return res
		}
	}
	metrics.CleanRequests.WithLabelValues("miss").Inc()
	return Result{}
}

// attempt is one pass of the strip/extract/resolve sequence. Locator
// extraction runs once per attempt: an annotation found on the token
// itself wins over the detached suffix. A failed extraction does not fail
// the attempt; a path without a locator is still a valid result.
func (c *Cleaner) attempt(token, suffix, workingDir string) (Result, bool) {
	stem, locator, ok := stripPunctuation(token)
	if !ok {
		return Result{}, false
	}

	src := suffix
	if locator != "" {
		src = locator
	}
	line, column, _ := extractLocator(src)

	path, ok := c.resolvePath(stem, workingDir)
	if !ok {
		return Result{}, false
	}
	return Result{Path: path, Line: line, Column: column}, true
}

// Go submits the cleaning operation to q and returns a channel that
// receives exactly one Result once it completes. The operation itself is
// synchronous and not cancellable; bounding latency is the caller's
// responsibility.
func (c *Cleaner) Go(q *execqueue.Queue, req Request) <-chan Result {
	out := make(chan Result, 1)
	q.Submit(func() {
		out <- c.Clean(req)
	})
	return out
}
