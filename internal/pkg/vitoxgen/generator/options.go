package generator

import "fmt"

// Options are the gate probabilities of the generator. Each stage of the
// transform chain runs when its own draw falls below its probability.
type Options struct {
	ToxicRatio    float64
	CompoundProb  float64
	CasingProb    float64
	TeencodeProb  float64
	HomoglyphProb float64
	NoiseProb     float64
	VowelProb     float64
	Digraphs      bool
	Seed          int64
}

func DefaultOptions() Options {
	return Options{
		ToxicRatio:    0.6,
		CompoundProb:  0.3,
		CasingProb:    0.2,
		TeencodeProb:  0.4,
		HomoglyphProb: 0.2,
		NoiseProb:     0.3,
		VowelProb:     0.1,
	}
}

func (o Options) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"toxic_ratio", o.ToxicRatio},
		{"compound_prob", o.CompoundProb},
		{"casing_prob", o.CasingProb},
		{"teencode_prob", o.TeencodeProb},
		{"homoglyph_prob", o.HomoglyphProb},
		{"noise_prob", o.NoiseProb},
		{"vowel_prob", o.VowelProb},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", p.name, p.v)
		}
	}
	return nil
}
