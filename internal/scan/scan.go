// Package scan extracts candidate path tokens from lines of captured
// terminal output.
package scan

import "strings"

// Candidate pairs a whitespace-delimited token with the text that follows
// it on the same line. The suffix lets locator annotations detached from
// the token (e.g. `", line 3, column 7`) still be found by the cleaner.
type Candidate struct {
	Token  string
	Suffix string
}

// Line splits one line of terminal output into candidates. Tokens are
// runs of non-blank characters; each suffix starts immediately after its
// token, leading whitespace included, and runs to the end of the line.
//
// A token opening with a double quote additionally yields the quoted part
// alone, with the closing quote starting the suffix. That keeps the quote
// available to the `", line N, column M` locator pattern for output like
// Python's `File "s.py", line 3`, where the annotation belongs to the
// construct rather than to the bare token.
func Line(line string) []Candidate {
	var out []Candidate
	i := 0
	for i < len(line) {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && !isBlank(line[i]) {
			i++
		}
		tok := line[start:i]
		out = append(out, Candidate{Token: tok, Suffix: line[i:]})
		if len(tok) > 1 && tok[0] == '"' {
			if j := strings.IndexByte(tok[1:], '"'); j >= 0 {
				closing := j + 1
				out = append(out, Candidate{
					Token:  tok[:closing+1],
					Suffix: tok[closing:] + line[i:],
				})
			}
		}
	}
	return out
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
