package generator

import (
	"fmt"
	"math/rand"
	"time"

	"vitoxgen/internal/pkg/vitoxgen/dataset"
	"vitoxgen/internal/pkg/vitoxgen/obfuscate"
	"vitoxgen/internal/pkg/vitoxgen/vocab"
)

type stage struct {
	name      string
	prob      float64
	toxicOnly bool
	apply     obfuscate.Transform
}

// Generator produces labeled samples. It is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	vocab  *vocab.Vocabulary
	opts   Options
	chain  []stage
	counts map[string]int
}

func New(v *vocab.Vocabulary, opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	teencode := obfuscate.Teencode
	if opts.Digraphs {
		teencode = obfuscate.TeencodeDigraphs
	}

	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		vocab: v,
		opts:  opts,
		chain: []stage{
			{name: "casing", prob: opts.CasingProb, apply: obfuscate.RandomCase},
			{name: "teencode", prob: opts.TeencodeProb, apply: teencode},
			{name: "homoglyph", prob: opts.HomoglyphProb, apply: obfuscate.Homoglyphs},
			{name: "noise", prob: opts.NoiseProb, toxicOnly: true, apply: obfuscate.Noise},
			{name: "vowel", prob: opts.VowelProb, apply: obfuscate.ThinVowels},
		},
		counts: make(map[string]int),
	}, nil
}

func (g *Generator) Next() dataset.Sample {
	label := vocab.Clean
	if g.rng.Float64() < g.opts.ToxicRatio {
		label = vocab.Toxic
	}
	return g.NextLabeled(label)
}

func (g *Generator) NextLabeled(label vocab.Label) dataset.Sample {
	return dataset.Sample{
		Text:  g.Obfuscate(g.Base(label), label),
		Label: label,
	}
}

// Base picks a phrase for label and, with CompoundProb, appends a second one.
func (g *Generator) Base(label vocab.Label) string {
	n := g.vocab.Size(label)
	base := g.vocab.Phrase(label, g.rng.Intn(n))
	if g.rng.Float64() < g.opts.CompoundProb {
		base += " " + g.vocab.Phrase(label, g.rng.Intn(n))
	}
	return base
}

// Obfuscate runs the transform chain in its fixed order. Later stages see
// the output of earlier ones.
func (g *Generator) Obfuscate(text string, label vocab.Label) string {
	for _, s := range g.chain {
		if s.toxicOnly && label != vocab.Toxic {
			continue
		}
		if g.rng.Float64() < s.prob {
			text = s.apply(g.rng, text)
			g.counts[s.name]++
		}
	}
	return text
}

// StageCounts reports how many times each stage has fired.
func (g *Generator) StageCounts() map[string]int {
	out := make(map[string]int, len(g.counts))
	for k, v := range g.counts {
		out[k] = v
	}
	return out
}
