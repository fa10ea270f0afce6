package dataset

import "vitoxgen/internal/pkg/vitoxgen/vocab"

type Sample struct {
	Text  string      `json:"text"`
	Label vocab.Label `json:"label"`
}
