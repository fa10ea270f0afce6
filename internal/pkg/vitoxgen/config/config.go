package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vitoxgen/internal/pkg/vitoxgen/corpus"
	"vitoxgen/internal/pkg/vitoxgen/dataset"
	"vitoxgen/internal/pkg/vitoxgen/generator"
)

// ErrHelp is returned when -h/--help was given and usage has been printed.
var ErrHelp = errors.New("help requested")

type Config struct {
	Output        string `mapstructure:"output"`
	Format        string `mapstructure:"format"`
	Compress      bool   `mapstructure:"compress"`
	Count         int    `mapstructure:"count"`
	Seed          int64  `mapstructure:"seed"`
	ProgressEvery int    `mapstructure:"progress_every"`
	BatchSize     int    `mapstructure:"batch_size"`
	VocabFile     string `mapstructure:"vocab_file"`
	VocabGlob     string `mapstructure:"vocab_glob"`
	Digraphs      bool   `mapstructure:"digraphs"`

	ToxicRatio    float64 `mapstructure:"toxic_ratio"`
	CompoundProb  float64 `mapstructure:"compound_prob"`
	CasingProb    float64 `mapstructure:"casing_prob"`
	TeencodeProb  float64 `mapstructure:"teencode_prob"`
	HomoglyphProb float64 `mapstructure:"homoglyph_prob"`
	NoiseProb     float64 `mapstructure:"noise_prob"`
	VowelProb     float64 `mapstructure:"vowel_prob"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

func setDefaults(v *viper.Viper) {
	gen := generator.DefaultOptions()

	v.SetDefault("output", filepath.Join("src", "data", "dataset.json"))
	v.SetDefault("format", "json")
	v.SetDefault("compress", false)
	v.SetDefault("count", corpus.DefaultCount)
	v.SetDefault("seed", 0)
	v.SetDefault("progress_every", corpus.DefaultProgressEvery)
	v.SetDefault("batch_size", corpus.DefaultBatchSize)
	v.SetDefault("vocab_file", "")
	v.SetDefault("vocab_glob", "")
	v.SetDefault("digraphs", false)
	v.SetDefault("toxic_ratio", gen.ToxicRatio)
	v.SetDefault("compound_prob", gen.CompoundProb)
	v.SetDefault("casing_prob", gen.CasingProb)
	v.SetDefault("teencode_prob", gen.TeencodeProb)
	v.SetDefault("homoglyph_prob", gen.HomoglyphProb)
	v.SetDefault("noise_prob", gen.NoiseProb)
	v.SetDefault("vowel_prob", gen.VowelProb)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"output":         "output",
	"format":         "format",
	"compress":       "compress",
	"count":          "count",
	"seed":           "seed",
	"progress-every": "progress_every",
	"batch-size":     "batch_size",
	"vocab":          "vocab_file",
	"vocab-glob":     "vocab_glob",
	"digraphs":       "digraphs",
	"toxic-ratio":    "toxic_ratio",
	"compound-prob":  "compound_prob",
	"casing-prob":    "casing_prob",
	"teencode-prob":  "teencode_prob",
	"homoglyph-prob": "homoglyph_prob",
	"noise-prob":     "noise_prob",
	"vowel-prob":     "vowel_prob",
	"log-level":      "log_level",
	"log-file":       "log_file",
}

func LoadAndParse() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse layers defaults, the TOML config file, VITOXGEN_* environment
// variables and command line flags, in increasing precedence.
func Parse(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	flagSet := pflag.NewFlagSet("vitoxgen", pflag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.StringP("output", "o", "", "Dataset file to append to")
	flagSet.StringP("format", "f", "json", "Dataset format ("+strings.Join(dataset.ListFormats(), ", ")+")")
	flagSet.Bool("compress", false, "Read and write the dataset through lz4")
	flagSet.IntP("count", "n", corpus.DefaultCount, "Number of samples to generate")
	flagSet.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flagSet.Int("progress-every", corpus.DefaultProgressEvery, "Report progress every N samples")
	flagSet.Int("batch-size", corpus.DefaultBatchSize, "Flush output every N samples")
	flagSet.String("vocab", "", "YAML file with extra toxic/clean phrases")
	flagSet.String("vocab-glob", "", "Glob of YAML vocabulary files (supports **)")
	flagSet.Bool("digraphs", false, "Let teencode rewrite digraphs such as ph, tr, gi")
	flagSet.Float64("toxic-ratio", 0.6, "Share of toxic samples")
	flagSet.Float64("compound-prob", 0.3, "Probability of joining two phrases")
	flagSet.Float64("casing-prob", 0.2, "Probability of random casing")
	flagSet.Float64("teencode-prob", 0.4, "Probability of teencode substitution")
	flagSet.Float64("homoglyph-prob", 0.2, "Probability of homoglyph substitution")
	flagSet.Float64("noise-prob", 0.3, "Probability of separator noise on toxic samples")
	flagSet.Float64("vowel-prob", 0.1, "Probability of vowel thinning")
	flagSet.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	flagSet.String("log-file", "", "Log file path")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(os.Stderr, "Usage: vitoxgen [options]\n\nOptions:\n")
		flagSet.PrintDefaults()
		return nil, ErrHelp
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flagSet.Lookup(name)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("vitoxgen.cfg")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vitoxgen"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("VITOXGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if !dataset.IsRegistered(c.Format) {
		return fmt.Errorf("unknown format %q (available: %s)", c.Format, strings.Join(dataset.ListFormats(), ", "))
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress_every must be positive")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}
	return c.GeneratorOptions().Validate()
}

func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		ToxicRatio:    c.ToxicRatio,
		CompoundProb:  c.CompoundProb,
		CasingProb:    c.CasingProb,
		TeencodeProb:  c.TeencodeProb,
		HomoglyphProb: c.HomoglyphProb,
		NoiseProb:     c.NoiseProb,
		VowelProb:     c.VowelProb,
		Digraphs:      c.Digraphs,
		Seed:          c.Seed,
	}
}
