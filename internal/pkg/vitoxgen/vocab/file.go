package vocab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"vitoxgen/internal/pkg/vitoxgen/preprocess"
)

// File is the on-disk shape of an extra vocabulary:
//
//	replace: false
//	toxic: ["vcl", "đmm"]
//	clean: ["xin chào"]
type File struct {
	Replace bool     `yaml:"replace"`
	Toxic   []string `yaml:"toxic"`
	Clean   []string `yaml:"clean"`

	Source string `yaml:"-"`
}

func (f *File) phrases(label Label) []string {
	switch label {
	case Toxic:
		return f.Toxic
	case Clean:
		return f.Clean
	}
	return nil
}

func FromYAML(data []byte) (*File, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("vocab: file is empty")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("vocab: failed to parse YAML: %w", err)
	}
	if len(f.Toxic) == 0 && len(f.Clean) == 0 {
		return nil, errors.New("vocab: file defines neither toxic nor clean phrases")
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: failed to read %s: %w", path, err)
	}
	f, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Source = path
	return f, nil
}

// LoadGlob loads every file matching pattern, which may contain "**".
// Matches are returned in lexical order so merges are reproducible.
func LoadGlob(pattern string) ([]*File, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("vocab: bad glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	files := make([]*File, 0, len(matches))
	for _, m := range matches {
		f, err := LoadFile(filepath.Clean(m))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Merge folds f into v. Phrases are normalized and blank entries dropped.
// With Replace set, the labels f defines lose their previous phrases first.
func (v *Vocabulary) Merge(f *File) int {
	added := 0
	for _, l := range Labels {
		raw := f.phrases(l)
		if len(raw) == 0 {
			continue
		}
		phrases := make([]string, 0, len(raw))
		for _, p := range raw {
			if p = preprocess.NormalizePhrase(p); p != "" {
				phrases = append(phrases, p)
			}
		}
		if f.Replace {
			v.set(l, nil)
		}
		added += v.add(l, phrases)
	}
	return added
}
