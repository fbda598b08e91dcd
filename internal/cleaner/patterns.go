package cleaner

import "regexp"

// locatorPattern recognizes one trailing line/column annotation form.
// Each pattern captures one or two numeric groups; arity records how many.
// The same pattern body is compiled twice: end-anchored for stripping a
// locator off a path token, and start-anchored for matching a standalone
// suffix string.
type locatorPattern struct {
	arity int
	end   *regexp.Regexp // body anchored with $
	start *regexp.Regexp // body anchored with ^
}

func newLocatorPattern(body string, arity int) locatorPattern {
	return locatorPattern{
		arity: arity,
		end:   regexp.MustCompile("(?:" + body + ")$"),
		start: regexp.MustCompile("^(?:" + body + ")"),
	}
}

// locatorPatterns is the fixed priority table. Order matters: the
// two-capture ":line:column" form must be tried before the bare ":line"
// form, since ":10:5" matches both. First match wins; captures are never
// combined across patterns.
var locatorPatterns = []locatorPattern{
	newLocatorPattern(`:(\d+):(\d+)`, 2),
	newLocatorPattern(`:(\d+)`, 1),
	newLocatorPattern(`\[(\d+), ?(\d+)\]`, 2),
	newLocatorPattern(`", line (\d+), column (\d+)`, 2),
	newLocatorPattern(`\((\d+), ?(\d+)\)`, 2),
}

// matchLocatorSuffix tries each pattern anchored at the very end of text.
// It returns the matched substring and the numeric captures, or ok=false
// when no pattern matches the tail.
func matchLocatorSuffix(text string) (matched string, captures []string, ok bool) {
	for _, p := range locatorPatterns {
		m := p.end.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return m[0], m[1 : 1+p.arity], true
	}
	return "", nil, false
}

// extractLocator matches a standalone suffix string against the pattern
// table. A pattern qualifies only when its match starts at the beginning
// of the suffix and consumes it entirely; partial matches are rejected.
// Returns the line and column as verbatim numeric text. Column is empty
// for single-capture patterns.
func extractLocator(suffix string) (line, column string, ok bool) {
	for _, p := range locatorPatterns {
		m := p.start.FindStringSubmatch(suffix)
		if m == nil || len(m[0]) != len(suffix) {
			continue
		}
		line = m[1]
		if p.arity == 2 {
			column = m[2]
		}
		return line, column, true
	}
	return "", "", false
}
