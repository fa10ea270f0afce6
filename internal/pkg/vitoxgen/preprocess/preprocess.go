package preprocess

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	zeroWidthRe  = regexp.MustCompile(`[\x{200B}\x{200C}\x{200D}\x{FEFF}]`)
)

type Preprocessor struct{}

func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Process returns the canonical form of a vocabulary phrase. Transform tables
// are keyed by precomposed runes, so decomposed input must be composed first.
func (p *Preprocessor) Process(text string) string {
	text = norm.NFC.String(text)
	text = zeroWidthRe.ReplaceAllString(text, "")
	text = normalizeQuotes(text)
	text = normalizePunctuation(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return text
}

// NormalizePhrase is Process on a shared zero-value Preprocessor.
func NormalizePhrase(text string) string {
	return defaultPreprocessor.Process(text)
}

var defaultPreprocessor = NewPreprocessor()

func normalizeQuotes(text string) string {
	text = strings.ReplaceAll(text, "\u201c", "\"")
	text = strings.ReplaceAll(text, "\u201d", "\"")
	text = strings.ReplaceAll(text, "\u2018", "'")
	text = strings.ReplaceAll(text, "\u2019", "'")
	text = strings.ReplaceAll(text, "\u00ab", "\"")
	text = strings.ReplaceAll(text, "\u00bb", "\"")
	return text
}

func normalizePunctuation(text string) string {
	text = strings.ReplaceAll(text, "\u2014", "-")
	text = strings.ReplaceAll(text, "\u2013", "-")
	text = strings.ReplaceAll(text, "\u2026", "...")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return text
}
