package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitoxgen/internal/pkg/vitoxgen/dataset"
	"vitoxgen/internal/pkg/vitoxgen/vocab"
)

func noTransforms(seed int64) Options {
	return Options{Seed: seed, ToxicRatio: 0.6}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.NoError(t, o.Validate())
	assert.Equal(t, 0.6, o.ToxicRatio)
	assert.Equal(t, 0.3, o.CompoundProb)
	assert.Equal(t, 0.2, o.CasingProb)
	assert.Equal(t, 0.4, o.TeencodeProb)
	assert.Equal(t, 0.2, o.HomoglyphProb)
	assert.Equal(t, 0.3, o.NoiseProb)
	assert.Equal(t, 0.1, o.VowelProb)
	assert.False(t, o.Digraphs)
}

func TestOptionsValidate(t *testing.T) {
	o := DefaultOptions()
	o.NoiseProb = 1.5
	err := o.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noise_prob")

	o = DefaultOptions()
	o.ToxicRatio = -0.1
	assert.Error(t, o.Validate())
}

func TestNewRejectsEmptyVocabulary(t *testing.T) {
	_, err := New(vocab.New(nil, []string{"xin chào"}), DefaultOptions())
	assert.ErrorIs(t, err, vocab.ErrEmptyVocabulary)
}

func TestLabelsAreToxicOrClean(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	g, err := New(vocab.Builtin(), opts)
	require.NoError(t, err)

	counts := map[vocab.Label]int{}
	for i := 0; i < 5000; i++ {
		s := g.Next()
		require.Contains(t, vocab.Labels, s.Label)
		counts[s.Label]++
	}
	assert.InDelta(t, 0.6, float64(counts[vocab.Toxic])/5000, 0.03)
}

func TestBasePhrasesComeFromLabelVocabulary(t *testing.T) {
	v := vocab.Builtin()
	opts := noTransforms(2)
	opts.CompoundProb = 0.3
	g, err := New(v, opts)
	require.NoError(t, err)

	compound := 0
	for i := 0; i < 3000; i++ {
		s := g.Next()
		if v.Contains(s.Label, s.Text) {
			continue
		}
		// Compound samples: some split point must yield two phrases of the label.
		found := false
		for j := strings.Index(s.Text, " "); j >= 0; {
			if v.Contains(s.Label, s.Text[:j]) && v.Contains(s.Label, s.Text[j+1:]) {
				found = true
				break
			}
			next := strings.Index(s.Text[j+1:], " ")
			if next < 0 {
				break
			}
			j += next + 1
		}
		require.True(t, found, "%q is not built from %s phrases", s.Text, s.Label)
		compound++
	}
	assert.Greater(t, compound, 0)
}

func TestForcedToxicWithoutTransforms(t *testing.T) {
	opts := noTransforms(3)
	opts.ToxicRatio = 1
	g, err := New(vocab.New([]string{"chết"}, []string{"xin chào"}), opts)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, dataset.Sample{Text: "chết", Label: vocab.Toxic}, g.Next())
	}
	assert.Empty(t, g.StageCounts())
}

func TestCompoundAlways(t *testing.T) {
	opts := noTransforms(4)
	opts.CompoundProb = 1
	g, err := New(vocab.New([]string{"chết"}, []string{"xin chào"}), opts)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		s := g.Next()
		if s.Label == vocab.Toxic {
			assert.Equal(t, "chết chết", s.Text)
		} else {
			assert.Equal(t, "xin chào xin chào", s.Text)
		}
	}
}

func TestNoiseOnlyForToxic(t *testing.T) {
	opts := noTransforms(5)
	opts.NoiseProb = 1
	g, err := New(vocab.Builtin(), opts)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		g.NextLabeled(vocab.Clean)
	}
	assert.Zero(t, g.StageCounts()["noise"])

	for i := 0; i < 200; i++ {
		g.NextLabeled(vocab.Toxic)
	}
	assert.Equal(t, 200, g.StageCounts()["noise"])
}

func TestStagesFireWithProbabilityOne(t *testing.T) {
	opts := Options{
		Seed:          6,
		ToxicRatio:    1,
		CasingProb:    1,
		TeencodeProb:  1,
		HomoglyphProb: 1,
		NoiseProb:     1,
		VowelProb:     1,
	}
	g, err := New(vocab.Builtin(), opts)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		s := g.Next()
		assert.Equal(t, vocab.Toxic, s.Label)
	}
	counts := g.StageCounts()
	for _, name := range []string{"casing", "teencode", "homoglyph", "noise", "vowel"} {
		assert.Equal(t, 50, counts[name], name)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99
	a, err := New(vocab.Builtin(), opts)
	require.NoError(t, err)
	b, err := New(vocab.Builtin(), opts)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestDigraphsOption(t *testing.T) {
	opts := noTransforms(7)
	opts.ToxicRatio = 1
	opts.TeencodeProb = 1
	opts.Digraphs = true
	g, err := New(vocab.New([]string{"phò"}, []string{"xin chào"}), opts)
	require.NoError(t, err)

	sawF := false
	for i := 0; i < 300; i++ {
		if strings.HasPrefix(g.Next().Text, "f") {
			sawF = true
		}
	}
	assert.True(t, sawF)

	opts.Digraphs = false
	g, err = New(vocab.New([]string{"phò"}, []string{"xin chào"}), opts)
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		assert.True(t, strings.HasPrefix(g.Next().Text, "p"))
	}
}
