package extract

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/keysift/keysift/internal/types"
)

const (
	// Label marks a key occurrence in the source text.
	Label = "密钥"
	// Prefix begins every key token.
	Prefix = "AIzaSy"
	// BodyLen is the exact number of characters following Prefix.
	BodyLen = 33
	// Alphabet is the character class of the key body.
	Alphabet = `A-Za-z0-9_-`

	// RuleID identifies findings produced by this package.
	RuleID = "google_api_key_labeled"
)

// The body is a fixed repetition, not a range; a longer run simply stops
// matching after BodyLen characters.
var reLabeledKey = regexp.MustCompile(
	regexp.QuoteMeta(Label) + `: (` + regexp.QuoteMeta(Prefix) + `[` + Alphabet + `]{` + strconv.Itoa(BodyLen) + `})`,
)

// Pattern returns the source of the compiled expression.
func Pattern() string { return reLabeledKey.String() }

// Extract returns every key token in text, left to right, duplicates kept.
// The result is never nil.
func Extract(text string) []string {
	ms := reLabeledKey.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m[1])
	}
	return out
}

// Find reports the same matches as Extract with their positions in data.
func Find(path string, data []byte) []types.Finding {
	idx := reLabeledKey.FindAllSubmatchIndex(data, -1)
	out := make([]types.Finding, 0, len(idx))
	line, lineStart, pos := 1, 0, 0
	for _, m := range idx {
		start, end := m[2], m[3]
		for ; pos < start; pos++ {
			if data[pos] == '\n' {
				line++
				lineStart = pos + 1
			}
		}
		out = append(out, types.Finding{
			Path:   path,
			Line:   line,
			Column: utf8.RuneCount(data[lineStart:start]) + 1,
			Offset: start,
			Key:    string(data[start:end]),
			Rule:   RuleID,
		})
	}
	return out
}
