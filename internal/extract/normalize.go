package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	trailingNoise  = regexp.MustCompile(`[',.\s]+$`)
)

// mojibake maps common UTF-8-as-Latin-1 artifacts back to the intended rune.
var mojibake = strings.NewReplacer(
	"â€™", "'",
	"’", "'",
)

// StripMarkdownLinks collapses markdown link syntax [text](url) to text.
func StripMarkdownLinks(text string) string {
	return markdownLinkRe.ReplaceAllString(text, "$1")
}

// NormalizeKey derives the canonical comparison form of a candidate name:
// NFKC-folded, mojibake-repaired, lower-cased, with trailing punctuation and
// quote variants stripped. Used only for equality and duplicate checks,
// never stored.
func NormalizeKey(name string) string {
	name = norm.NFKC.String(name)
	name = mojibake.Replace(name)
	name = strings.ToLower(name)
	name = trailingNoise.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
