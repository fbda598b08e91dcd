package cleaner

import "strings"

// enclosingPairs maps an opening delimiter to its closing counterpart.
// A token wrapped in a matching pair sheds exactly one layer.
var enclosingPairs = map[byte]byte{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'<':  '>',
	'"':  '"',
	'\'': '\'',
}

// stripPunctuation removes the noise that terminal output attaches to a
// path token: one layer of enclosing delimiters, a single trailing
// punctuation character, and a trailing locator annotation. It returns the
// stripped stem plus the exact locator substring that was removed, if any.
// ok is false only for empty input.
//
// The locator match must be anchored at the very end of the token; a
// pattern that matches mid-tail but leaves characters after it does not
// count. When no locator matched, a single unbalanced trailing ")" is
// dropped, which handles tokens like "main.c)" from prose such as
// "(see main.c)".
func stripPunctuation(token string) (stem, locator string, ok bool) {
	if token == "" {
		return "", "", false
	}

	s := token
	if len(s) >= 2 {
		if closer, found := enclosingPairs[s[0]]; found && s[len(s)-1] == closer {
			s = s[1 : len(s)-1]
		}
	}

	if len(s) > 0 {
		switch s[len(s)-1] {
		case '.', ',', ':':
			s = s[:len(s)-1]
		}
	}

	if matched, _, found := matchLocatorSuffix(s); found {
		return s[:len(s)-len(matched)], matched, true
	}

	if strings.HasSuffix(s, ")") {
		return s[:len(s)-1], "", true
	}

	return s, "", true
}
