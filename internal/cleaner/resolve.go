package cleaner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leapmux/pathlens/internal/metrics"
)

// resolvePath turns a stripped stem into a verified absolute path, or
// ok=false when the stem does not name an acceptable local file.
//
// The candidate is deliberately NOT standardized before the existence
// probe: lexically resolving "."/".." first could both trigger filesystem
// access on a path that never needed it and follow a symlinked component
// into excluded territory before the exclusion list is consulted. The
// forbidden-prefix check runs on the standardized path afterwards, so a
// ".."-laden candidate cannot dodge a configured prefix.
func (c *Cleaner) resolvePath(stem, workingDir string) (path string, ok bool) {
	if stem == "" {
		return "", false
	}

	stem = expandHome(stem)
	if stem == "" {
		// Everything was stripped away; resolving this to the working
		// directory itself would be a false positive.
		return "", false
	}

	candidate := stem
	if !filepath.IsAbs(candidate) {
		// Join on a component boundary without cleaning.
		candidate = strings.TrimSuffix(workingDir, "/") + "/" + candidate
	}

	// Settle before probing so rapid repeated cleans do not hammer a slow
	// or network-backed filesystem.
	if c.probeDelay > 0 {
		time.Sleep(c.probeDelay)
	}
	start := time.Now()
	exists := c.policy.ExistsLocally(candidate, c.prefixes)
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	if !exists {
		return "", false
	}

	standardized := filepath.Clean(candidate)
	if c.policy.HasForbiddenPrefix(standardized, c.prefixes) {
		return "", false
	}
	return standardized, true
}

// expandHome expands a leading "~" or "~/" using the current user's home
// directory. Tokens that cannot be expanded collapse to "".
func expandHome(s string) string {
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if s == "~" {
		return home
	}
	return home + s[1:]
}
