// Package obfuscate disguises base phrases the way users evade keyword filters.
package obfuscate

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// CharRate is the per-rune trigger rate of the substitution transforms.
	CharRate = 0.3
	// FlipRate is the chance a rune is upper-cased by RandomCase, and the
	// chance a vowel is dropped by ThinVowels.
	FlipRate = 0.5
)

type Transform func(rng *rand.Rand, text string) string

func RandomCase(rng *rand.Rand, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if rng.Float64() < FlipRate {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Teencode scans rune by rune. Only single-rune keys can match, so the
// digraph entries of the table are never used; see TeencodeDigraphs.
func Teencode(rng *rand.Rand, text string) string {
	return teencodeScan(rng, text, false)
}

// TeencodeDigraphs tries the two-rune window first, so "ph" can become "f"
// and "tr" can become "ch". When the digraph is not rewritten the scan falls
// back to the single-rune rule for the current rune.
func TeencodeDigraphs(rng *rand.Rand, text string) string {
	return teencodeScan(rng, text, true)
}

func teencodeScan(rng *rand.Rand, text string, digraphs bool) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		lower := unicode.ToLower(runes[i])
		if digraphs && i+1 < len(runes) {
			key := string([]rune{lower, unicode.ToLower(runes[i+1])})
			if _, ok := digraphKeys[key]; ok && rng.Float64() < CharRate {
				b.WriteString(pick(rng, teencode[key]))
				i++
				continue
			}
		}
		if cands, ok := teencode[string(lower)]; ok && rng.Float64() < CharRate {
			b.WriteString(pick(rng, cands))
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func Homoglyphs(rng *rand.Rand, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if g, ok := homoglyphs[r]; ok && rng.Float64() < CharRate {
			b.WriteRune(g)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Noise applies SpreadWord or JoinWords with equal chance.
func Noise(rng *rand.Rand, text string) string {
	if rng.Float64() < 0.5 {
		return SpreadWord(rng, text)
	}
	return JoinWords(rng, text)
}

// SpreadWord picks one word and interleaves a random separator between its
// runes: "chết" -> "c.h.ế.t". Words are re-joined with single spaces.
func SpreadWord(rng *rand.Rand, text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	idx := rng.Intn(len(words))
	words[idx] = InsertNoise(rng, words[idx])
	return strings.Join(words, " ")
}

func InsertNoise(rng *rand.Rand, word string) string {
	if utf8.RuneCountInString(word) < 2 {
		return word
	}
	return interleave(word, pick(rng, separators))
}

func interleave(word, sep string) string {
	if sep == "" {
		return word
	}
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// JoinWords replaces every space with one separator chosen per call:
// "chết tiệt" -> "chết.tiệt".
func JoinWords(rng *rand.Rand, text string) string {
	return strings.ReplaceAll(text, " ", pick(rng, separators))
}

func ThinVowels(rng *rand.Rand, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if IsVowel(unicode.ToLower(r)) && rng.Float64() <= FlipRate {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}
