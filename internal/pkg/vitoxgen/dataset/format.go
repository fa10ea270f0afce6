package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var ErrUnknownFormat = errors.New("dataset: unknown format")

// Encoder writes records to an underlying stream. EncodeRaw re-lays out an
// already encoded record without touching its content. Close writes any
// trailer the format needs; it does not close the stream.
type Encoder interface {
	Encode(s Sample) error
	EncodeRaw(rec json.RawMessage) error
	Close() error
}

// Decoder yields records verbatim until io.EOF. Any other error means the
// stream is not well-formed JSON.
type Decoder interface {
	Decode() (json.RawMessage, error)
}

type Format struct {
	Name       string
	Extension  string
	NewEncoder func(w io.Writer) Encoder
	NewDecoder func(r io.Reader) Decoder
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Format)
)

func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f.NewEncoder == nil || f.NewDecoder == nil {
		panic("dataset: Register format with nil codec")
	}
	if _, dup := registry[f.Name]; dup {
		panic("dataset: Register called twice for " + f.Name)
	}
	registry[f.Name] = f
}

func Lookup(name string) (Format, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Format{}, fmt.Errorf("%w %q (registered: %v)", ErrUnknownFormat, name, ListFormats())
	}
	return f, nil
}

func ListFormats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
