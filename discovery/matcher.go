package discovery

import (
	"regexp"
	"strings"
)

// Match reports whether a file name satisfies a glob token. Only `*` (any
// run of characters, including none) and `?` (exactly one character) are
// special; everything else, including `.`, is literal. The whole name must
// match, and matching is case-sensitive.
func Match(name, pattern string) bool {
	if pattern == "*" || pattern == "*.*" {
		return true
	}

	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// HasWildcard reports whether spec contains glob characters and should be
// treated as a pattern rather than a literal path.
func HasWildcard(spec string) bool {
	return strings.ContainsAny(spec, "*?")
}
