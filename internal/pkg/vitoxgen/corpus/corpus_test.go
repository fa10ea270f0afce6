package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitoxgen/internal/pkg/vitoxgen/dataset"
	"vitoxgen/internal/pkg/vitoxgen/generator"
	"vitoxgen/internal/pkg/vitoxgen/vocab"
)

func plainOptions() generator.Options {
	return generator.Options{Seed: 42}
}

func newStore(t *testing.T, path string) *dataset.Store {
	t.Helper()
	st, err := dataset.NewStore(path, "json", false)
	require.NoError(t, err)
	return st
}

func newGenerator(t *testing.T, v *vocab.Vocabulary, opts generator.Options) *generator.Generator {
	t.Helper()
	g, err := generator.New(v, opts)
	require.NoError(t, err)
	return g
}

func TestRunForcedToxicWithoutTransforms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	opts := plainOptions()
	opts.ToxicRatio = 1
	g := newGenerator(t, vocab.New([]string{"chết"}, []string{"xin chào"}), opts)

	var existingErr error
	stats, err := Run(context.Background(), Options{
		Store:      newStore(t, path),
		Count:      25,
		OnExisting: func(_ int, err error) { existingErr = err },
	}, g)
	require.NoError(t, err)
	assert.ErrorIs(t, existingErr, os.ErrNotExist)
	assert.Equal(t, 0, stats.Existing)
	assert.Equal(t, 25, stats.Generated)
	assert.Equal(t, 25, stats.Total)
	assert.False(t, stats.Malformed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25, strings.Count(string(data), "{\n    \"text\": \"chết\",\n    \"label\": \"toxic\"\n  }"))

	got, err := newStore(t, path).ReadAll()
	require.NoError(t, err)
	for _, s := range got {
		assert.Equal(t, dataset.Sample{Text: "chết", Label: vocab.Toxic}, s)
	}
}

func TestRunCompoundPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	opts := plainOptions()
	opts.ToxicRatio = 0.5
	opts.CompoundProb = 1
	g := newGenerator(t, vocab.New([]string{"chết"}, []string{"xin chào"}), opts)

	_, err := Run(context.Background(), Options{Store: newStore(t, path), Count: 200}, g)
	require.NoError(t, err)

	got, err := newStore(t, path).ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 200)
	for _, s := range got {
		switch s.Label {
		case vocab.Toxic:
			assert.Equal(t, "chết chết", s.Text)
		case vocab.Clean:
			assert.Equal(t, "xin chào xin chào", s.Text)
		default:
			t.Fatalf("unexpected label %q", s.Label)
		}
	}
}

func TestRunAppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	g := newGenerator(t, vocab.Builtin(), generator.Options{Seed: 7, ToxicRatio: 0.6})

	_, err := Run(context.Background(), Options{Store: newStore(t, path), Count: 30}, g)
	require.NoError(t, err)
	before, err := newStore(t, path).ReadAll()
	require.NoError(t, err)

	var seen int
	stats, err := Run(context.Background(), Options{
		Store:      newStore(t, path),
		Count:      12,
		OnExisting: func(n int, err error) { seen = n; require.NoError(t, err) },
	}, g)
	require.NoError(t, err)
	assert.Equal(t, 30, seen)
	assert.Equal(t, 30, stats.Existing)
	assert.Equal(t, 42, stats.Total)

	after, err := newStore(t, path).ReadAll()
	require.NoError(t, err)
	require.Len(t, after, 42)
	assert.Equal(t, before, after[:30])
}

func TestRunMalformedExistingStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text": "cut", "label": "toxic"},`), 0o644))
	g := newGenerator(t, vocab.Builtin(), plainOptions())

	var existingErr error
	stats, err := Run(context.Background(), Options{
		Store:      newStore(t, path),
		Count:      5,
		OnExisting: func(_ int, err error) { existingErr = err },
	}, g)
	require.NoError(t, err)
	assert.ErrorIs(t, existingErr, dataset.ErrMalformed)
	assert.True(t, stats.Malformed)
	assert.Equal(t, 5, stats.Total)

	got, err := newStore(t, path).ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestRunZeroCountRewritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	g := newGenerator(t, vocab.Builtin(), plainOptions())

	_, err := Run(context.Background(), Options{Store: newStore(t, path), Count: 0}, g)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRunProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.jsonl")
	st, err := dataset.NewStore(path, "jsonl", false)
	require.NoError(t, err)
	g := newGenerator(t, vocab.Builtin(), generator.DefaultOptions())

	var marks []int
	_, err = Run(context.Background(), Options{
		Store:         st,
		Count:         95,
		ProgressEvery: 20,
		BatchSize:     7,
		Progress:      func(n int) { marks = append(marks, n) },
	}, g)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 40, 60, 80}, marks)

	n, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, 95, n)
}

func TestRunCancelledLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	g := newGenerator(t, vocab.Builtin(), plainOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Store: newStore(t, path), Count: 10}, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be removed")
}

func TestRunRejectsBadOptions(t *testing.T) {
	g := newGenerator(t, vocab.Builtin(), plainOptions())
	_, err := Run(context.Background(), Options{Count: 1}, g)
	assert.Error(t, err)

	_, err = Run(context.Background(), Options{Store: newStore(t, filepath.Join(t.TempDir(), "d.json")), Count: -1}, g)
	assert.Error(t, err)
}

func TestRunCarriesPriorRecordsVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		prior string
		want  string
	}{
		{
			name:  "extra field",
			prior: `[{"text":"a","label":"toxic","source":"reddit"}]`,
			want:  "{\n    \"text\": \"a\",\n    \"label\": \"toxic\",\n    \"source\": \"reddit\"\n  }",
		},
		{
			name:  "null element",
			prior: `[null]`,
			want:  "[\n  null,\n  {",
		},
		{
			name:  "mistyped element",
			prior: `[{"text":5,"label":"toxic"},{"text":"keep me","label":"clean"}]`,
			want:  "{\n    \"text\": 5,\n    \"label\": \"toxic\"\n  },\n  {\n    \"text\": \"keep me\",\n    \"label\": \"clean\"\n  }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dataset.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.prior), 0o644))
			g := newGenerator(t, vocab.Builtin(), plainOptions())

			var existingErr error
			stats, err := Run(context.Background(), Options{
				Store:      newStore(t, path),
				Count:      1,
				OnExisting: func(_ int, err error) { existingErr = err },
			}, g)
			require.NoError(t, err)
			require.NoError(t, existingErr)
			assert.False(t, stats.Malformed)
			assert.Equal(t, stats.Existing+1, stats.Total)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.NotContains(t, string(data), `"text": ""`)

			n, err := newStore(t, path).Count()
			require.NoError(t, err)
			assert.Equal(t, stats.Total, n)
		})
	}
}

func TestRunReadsPriorFileInAnyLayout(t *testing.T) {
	dir := t.TempDir()
	g := newGenerator(t, vocab.Builtin(), plainOptions())

	tests := []struct {
		name      string
		prior     func(t *testing.T, path string)
		format    string
		compress  bool
		existing  int
		malformed bool
		wantErr   bool
	}{
		{
			name: "array read as lines",
			prior: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte(`[{"text":"a","label":"toxic"},{"text":"b","label":"clean"}]`), 0o644))
			},
			format:   "jsonl",
			existing: 2,
		},
		{
			name: "lines read as array",
			prior: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("{\"text\":\"a\",\"label\":\"toxic\"}\n"), 0o644))
			},
			format:   "json",
			existing: 1,
		},
		{
			name: "plain read with compression",
			prior: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte(`[{"text":"a","label":"toxic"}]`), 0o644))
			},
			format:   "json",
			compress: true,
			existing: 1,
		},
		{
			name: "compressed read without compression",
			prior: func(t *testing.T, path string) {
				st, err := dataset.NewStore(path, "json", true)
				require.NoError(t, err)
				_, err = Run(context.Background(), Options{Store: st, Count: 3}, g)
				require.NoError(t, err)
			},
			format:   "json",
			existing: 3,
		},
		{
			name: "directory",
			prior: func(t *testing.T, path string) {
				require.NoError(t, os.Mkdir(path, 0o755))
			},
			format:    "json",
			malformed: true,
			wantErr:   true,
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := filepath.Join(dir, strconv.Itoa(i))
			require.NoError(t, os.Mkdir(sub, 0o755))
			path := filepath.Join(sub, "dataset")
			tt.prior(t, path)

			st, err := dataset.NewStore(path, tt.format, tt.compress)
			require.NoError(t, err)

			var existingErr error
			stats, err := Run(context.Background(), Options{
				Store:      st,
				Count:      1,
				OnExisting: func(_ int, err error) { existingErr = err },
			}, g)

			entries, dirErr := os.ReadDir(sub)
			require.NoError(t, dirErr)
			assert.Len(t, entries, 1, "temp file must not be left behind")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, existingErr, dataset.ErrMalformed)
				info, statErr := os.Stat(path)
				require.NoError(t, statErr)
				assert.True(t, info.IsDir())
				return
			}
			require.NoError(t, err)
			require.NoError(t, existingErr)
			assert.Equal(t, tt.malformed, stats.Malformed)
			assert.Equal(t, tt.existing, stats.Existing)
			assert.Equal(t, tt.existing+1, stats.Total)

			n, err := st.Count()
			require.NoError(t, err)
			assert.Equal(t, tt.existing+1, n)
		})
	}
}

// sabotage replaces the run's temp file with a non-empty directory so that
// it cannot be removed, then cancels the run.
type sabotage struct {
	t      *testing.T
	dir    string
	cancel context.CancelFunc
	done   bool
}

func (s *sabotage) Next() dataset.Sample {
	if !s.done {
		s.done = true
		matches, err := filepath.Glob(filepath.Join(s.dir, ".dataset.json.*.tmp"))
		require.NoError(s.t, err)
		require.Len(s.t, matches, 1)
		require.NoError(s.t, os.Remove(matches[0]))
		require.NoError(s.t, os.Mkdir(matches[0], 0o755))
		require.NoError(s.t, os.WriteFile(filepath.Join(matches[0], "keep"), nil, 0o644))
		s.cancel()
	}
	return dataset.Sample{Text: "chết", Label: vocab.Toxic}
}

func TestRunReportsCleanupFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := Run(ctx, Options{
		Store:     newStore(t, path),
		Count:     3,
		BatchSize: 1,
	}, &sabotage{t: t, dir: dir, cancel: cancel})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "dataset: remove")

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
