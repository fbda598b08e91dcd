package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLocatorSuffix(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		matched  string
		captures []string
	}{
		{"line and column", "main.c:10:5", ":10:5", []string{"10", "5"}},
		{"line only", "main.c:10", ":10", []string{"10"}},
		{"bracketed pair", "app.ts[3, 14]", "[3, 14]", []string{"3", "14"}},
		{"bracketed no space", "app.ts[3,14]", "[3,14]", []string{"3", "14"}},
		{"quoted style", `script.py", line 3, column 7`, `", line 3, column 7`, []string{"3", "7"}},
		{"parenthesized pair", "mod.f90(12, 8)", "(12, 8)", []string{"12", "8"}},
		{"leading zeros preserved", "main.c:007:05", ":007:05", []string{"007", "05"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, captures, ok := matchLocatorSuffix(tt.text)
			require.True(t, ok, "matchLocatorSuffix(%q) should match", tt.text)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.captures, captures)
		})
	}

	t.Run("no match", func(t *testing.T) {
		for _, text := range []string{
			"",
			"main.c",
			"main.c:10:5.bak", // locator not at the very end
			"main.c:10 cold",  // trailing characters after the pattern
			"notes[3, x]",
		} {
			_, _, ok := matchLocatorSuffix(text)
			assert.False(t, ok, "matchLocatorSuffix(%q) should not match", text)
		}
	})

	t.Run("two-capture form wins over line-only", func(t *testing.T) {
		matched, captures, ok := matchLocatorSuffix("x:10:5")
		require.True(t, ok)
		assert.Equal(t, ":10:5", matched)
		assert.Len(t, captures, 2)
	})
}

func TestExtractLocator(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		line   string
		column string
	}{
		{"line and column", ":10:5", "10", "5"},
		{"line only", ":10", "10", ""},
		{"bracketed", "[3, 14]", "3", "14"},
		{"quoted style", `", line 3, column 7`, "3", "7"},
		{"parenthesized", "(12,8)", "12", "8"},
		{"leading zeros preserved", ":007", "007", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column, ok := extractLocator(tt.suffix)
			require.True(t, ok, "extractLocator(%q) should match", tt.suffix)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, column)
		})
	}

	t.Run("rejects partial matches", func(t *testing.T) {
		for _, suffix := range []string{
			"",
			":10:5 trailing",
			":10x",
			"prefix:10",
			"[3, 14] and more",
		} {
			_, _, ok := extractLocator(suffix)
			assert.False(t, ok, "extractLocator(%q) should not match", suffix)
		}
	})

	t.Run("column never set without line", func(t *testing.T) {
		for _, suffix := range []string{":10:5", ":10", "[3, 14]", "(1, 2)", "garbage"} {
			line, column, _ := extractLocator(suffix)
			if column != "" {
				assert.NotEmpty(t, line, "extractLocator(%q) set column without line", suffix)
			}
		}
	})
}
