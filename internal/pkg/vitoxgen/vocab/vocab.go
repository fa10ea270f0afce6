package vocab

import (
	"errors"
	"fmt"
)

type Label string

const (
	Toxic Label = "toxic"
	Clean Label = "clean"
)

var Labels = []Label{Toxic, Clean}

var ErrEmptyVocabulary = errors.New("vocab: empty phrase list")

func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case Toxic, Clean:
		return Label(s), nil
	}
	return "", fmt.Errorf("vocab: unknown label %q", s)
}

func (l Label) String() string {
	return string(l)
}

// Vocabulary holds the ordered base phrases for each label. Duplicates are
// kept, so a phrase listed twice is drawn twice as often.
type Vocabulary struct {
	toxic []string
	clean []string
}

func New(toxic, clean []string) *Vocabulary {
	return &Vocabulary{
		toxic: append([]string(nil), toxic...),
		clean: append([]string(nil), clean...),
	}
}

func Builtin() *Vocabulary {
	return New(builtinToxic, builtinClean)
}

func (v *Vocabulary) list(label Label) []string {
	switch label {
	case Toxic:
		return v.toxic
	case Clean:
		return v.clean
	}
	return nil
}

// Phrases returns a copy of the list for label.
func (v *Vocabulary) Phrases(label Label) []string {
	list := v.list(label)
	if list == nil {
		return nil
	}
	return append([]string(nil), list...)
}

// Phrase returns the i-th phrase for label. It panics when i is out of range.
func (v *Vocabulary) Phrase(label Label, i int) string {
	return v.list(label)[i]
}

func (v *Vocabulary) Size(label Label) int {
	return len(v.list(label))
}

func (v *Vocabulary) Contains(label Label, phrase string) bool {
	for _, p := range v.list(label) {
		if p == phrase {
			return true
		}
	}
	return false
}

func (v *Vocabulary) Validate() error {
	for _, l := range Labels {
		if v.Size(l) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyVocabulary, l)
		}
	}
	return nil
}

func (v *Vocabulary) set(label Label, phrases []string) {
	switch label {
	case Toxic:
		v.toxic = phrases
	case Clean:
		v.clean = phrases
	}
}

// add appends phrases not already present for label and reports how many were new.
func (v *Vocabulary) add(label Label, phrases []string) int {
	list := v.list(label)
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		seen[p] = struct{}{}
	}
	added := 0
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		list = append(list, p)
		added++
	}
	v.set(label, list)
	return added
}
