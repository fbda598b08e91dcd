package cleaner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapmux/pathlens/internal/fspolicy"
)

// fakePolicy is an in-memory fspolicy.Policy. Existing paths are stored in
// lexically cleaned form; probes are counted so tests can assert that no
// filesystem access happens on short-circuited failures.
type fakePolicy struct {
	existing map[string]bool
	probes   int
}

func newFakePolicy(paths ...string) *fakePolicy {
	p := &fakePolicy{existing: make(map[string]bool)}
	for _, path := range paths {
		p.existing[path] = true
	}
	return p
}

func (p *fakePolicy) ExistsLocally(path string, prefixes []string) bool {
	p.probes++
	if fspolicy.UnderAnyPrefix(path, prefixes) {
		return false
	}
	return p.existing[filepath.Clean(path)]
}

func (p *fakePolicy) HasForbiddenPrefix(path string, prefixes []string) bool {
	return fspolicy.UnderAnyPrefix(path, prefixes)
}

func TestResolvePath(t *testing.T) {
	t.Run("relative path joined under working directory", func(t *testing.T) {
		c := New(newFakePolicy("/repo/main.c"), Options{})
		path, ok := c.resolvePath("./main.c", "/repo")
		require.True(t, ok)
		assert.Equal(t, "/repo/main.c", path)
	})

	t.Run("absolute path kept as-is", func(t *testing.T) {
		c := New(newFakePolicy("/etc/hosts"), Options{})
		path, ok := c.resolvePath("/etc/hosts", "/elsewhere")
		require.True(t, ok)
		assert.Equal(t, "/etc/hosts", path)
	})

	t.Run("working directory trailing slash", func(t *testing.T) {
		c := New(newFakePolicy("/repo/main.c"), Options{})
		path, ok := c.resolvePath("main.c", "/repo/")
		require.True(t, ok)
		assert.Equal(t, "/repo/main.c", path)
	})

	t.Run("empty stem fails without probing", func(t *testing.T) {
		policy := newFakePolicy()
		c := New(policy, Options{})
		_, ok := c.resolvePath("", "/repo")
		assert.False(t, ok)
		assert.Zero(t, policy.probes)
	})

	t.Run("missing file fails", func(t *testing.T) {
		c := New(newFakePolicy(), Options{})
		_, ok := c.resolvePath("nope.c", "/repo")
		assert.False(t, ok)
	})

	t.Run("home expansion", func(t *testing.T) {
		t.Setenv("HOME", "/home/u")
		c := New(newFakePolicy("/home/u/notes.md"), Options{})
		path, ok := c.resolvePath("~/notes.md", "/irrelevant")
		require.True(t, ok)
		assert.Equal(t, "/home/u/notes.md", path)
	})

	t.Run("home expansion failure fails without probing", func(t *testing.T) {
		t.Setenv("HOME", "")
		policy := newFakePolicy()
		c := New(policy, Options{})
		_, ok := c.resolvePath("~/notes.md", "/irrelevant")
		assert.False(t, ok)
		assert.Zero(t, policy.probes)
	})

	t.Run("forbidden prefix rejects existing path", func(t *testing.T) {
		c := New(newFakePolicy("/mnt/net/secret.txt"), Options{
			IgnoredPrefixes: []string{"/mnt/net"},
		})
		_, ok := c.resolvePath("/mnt/net/secret.txt", "/")
		assert.False(t, ok)
	})

	t.Run("forbidden prefix checked after standardization", func(t *testing.T) {
		// The raw candidate does not textually sit under the prefix, but
		// its standardized form does.
		c := New(newFakePolicy("/w/secret/file.txt"), Options{
			IgnoredPrefixes: []string{"/w/secret"},
		})
		_, ok := c.resolvePath("docs/../secret/file.txt", "/w")
		assert.False(t, ok)
	})

	t.Run("dot segments standardized in result", func(t *testing.T) {
		c := New(newFakePolicy("/w/file.txt"), Options{})
		path, ok := c.resolvePath("docs/../file.txt", "/w")
		require.True(t, ok)
		assert.Equal(t, "/w/file.txt", path)
	})
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", "/home/u"},
		{"tilde subpath", "~/x/y.txt", "/home/u/x/y.txt"},
		{"no tilde", "plain.txt", "plain.txt"},
		{"tilde mid-string kept", "a/~b", "a/~b"},
		{"tilde user form kept", "~root/x", "~root/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandHome(tt.in))
		})
	}
}
