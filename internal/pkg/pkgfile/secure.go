package pkgfile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//nolint:gochecknoglobals // compiled once
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename returns an ASCII-only version of name that can be joined to a
// directory without escaping it.
//
// Accented letters are decomposed and reduced to their base letter, path
// separators become word breaks, whitespace runs are joined with "_", any other
// character outside [A-Za-z0-9_.-] is dropped and leading or trailing dots and
// underscores are trimmed. The result may be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	ascii := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	joined := strings.Join(strings.Fields(ascii), "_")

	return strings.Trim(unsafeChars.ReplaceAllString(joined, ""), "._")
}
