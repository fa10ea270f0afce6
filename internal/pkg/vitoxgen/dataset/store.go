package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"
)

var ErrMalformed = errors.New("dataset: malformed file")

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}

// Store locates a dataset file and knows how to read and write it.
type Store struct {
	Path     string
	Format   Format
	Compress bool
}

// NewStore resolves the format by name. Paths ending in ".lz4" are always
// written compressed. Reading ignores both settings: compression is detected
// from the frame magic and either JSON layout is accepted.
func NewStore(path, format string, compress bool) (*Store, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return &Store{
		Path:     path,
		Format:   f,
		Compress: compress || strings.HasSuffix(path, ".lz4"),
	}, nil
}

type readCloser struct {
	io.Reader
	f *os.File
}

func (r *readCloser) Close() error {
	return r.f.Close()
}

// lz4Magic is the little-endian lz4 frame magic number.
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

func (s *Store) open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(f, 1<<16)
	var r io.Reader = br
	if head, _ := br.Peek(len(lz4Magic)); bytes.Equal(head, lz4Magic) {
		r = lz4.NewReader(br)
	}
	return &readCloser{Reader: r, f: f}, nil
}

// EachRecord calls fn with every record of the file exactly as stored. A
// missing file yields an error matching os.ErrNotExist; a file that is not
// valid JSON yields ErrMalformed.
func (s *Store) EachRecord(fn func(json.RawMessage) error) error {
	rc, err := s.open()
	if err != nil {
		return fmt.Errorf("dataset: open %s: %w", s.Path, err)
	}
	defer rc.Close()

	dec := s.Format.NewDecoder(rc)
	for {
		rec, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("dataset: read %s: %w", s.Path, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Each decodes every record into a Sample.
func (s *Store) Each(fn func(Sample) error) error {
	i := 0
	return s.EachRecord(func(rec json.RawMessage) error {
		var sm Sample
		if err := json.Unmarshal(rec, &sm); err != nil {
			return fmt.Errorf("dataset: record %d of %s: %w", i, s.Path, err)
		}
		i++
		return fn(sm)
	})
}

// Count validates the whole file and returns its record count.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.EachRecord(func(json.RawMessage) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ReadAll loads every record into memory. Intended for small files and tests.
func (s *Store) ReadAll() ([]Sample, error) {
	var out []Sample
	err := s.Each(func(sm Sample) error {
		out = append(out, sm)
		return nil
	})
	return out, err
}

// Appender streams a new version of the dataset into a temporary file next
// to the target. The target is replaced only by Commit.
type Appender struct {
	store   *Store
	tmpPath string
	file    *os.File
	buf     *bufio.Writer
	lz      *lz4.Writer
	enc     Encoder
	count   int
	closed  bool
}

func (s *Store) NewAppender(runID uuid.UUID) (*Appender, error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create directory %s: %w", dir, err)
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.Path), runID))
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("dataset: create temp file: %w", err)
	}

	a := &Appender{store: s, tmpPath: tmpPath, file: f}
	a.buf = bufio.NewWriterSize(f, 1<<16)
	var w io.Writer = a.buf
	if s.Compress {
		a.lz = lz4.NewWriter(a.buf)
		w = a.lz
	}
	a.enc = s.Format.NewEncoder(w)
	return a, nil
}

func (a *Appender) TempPath() string {
	return a.tmpPath
}

func (a *Appender) Count() int {
	return a.count
}

func (a *Appender) Append(s Sample) error {
	if err := a.enc.Encode(s); err != nil {
		return fmt.Errorf("dataset: write %s: %w", a.tmpPath, err)
	}
	a.count++
	return nil
}

// AppendRaw writes a record that is already encoded, keeping every field.
func (a *Appender) AppendRaw(rec json.RawMessage) error {
	if err := a.enc.EncodeRaw(rec); err != nil {
		return fmt.Errorf("dataset: write %s: %w", a.tmpPath, err)
	}
	a.count++
	return nil
}

// CopyFrom streams every record of src into the appender unchanged apart from
// layout.
func (a *Appender) CopyFrom(src *Store) (int, error) {
	n := 0
	err := src.EachRecord(func(rec json.RawMessage) error {
		n++
		return a.AppendRaw(rec)
	})
	return n, err
}

// Flush pushes buffered bytes to the temp file. Compressed output is flushed
// as a complete lz4 block.
func (a *Appender) Flush() error {
	if a.lz != nil {
		if err := a.lz.Flush(); err != nil {
			return fmt.Errorf("dataset: flush compressor: %w", err)
		}
	}
	if err := a.buf.Flush(); err != nil {
		return fmt.Errorf("dataset: flush %s: %w", a.tmpPath, err)
	}
	return nil
}

// Commit finishes the file, syncs it and renames it over the target.
func (a *Appender) Commit() error {
	if a.closed {
		return errors.New("dataset: appender already closed")
	}
	a.closed = true

	if err := a.finish(); err != nil {
		a.file.Close()
		os.Remove(a.tmpPath)
		return err
	}
	if err := a.file.Close(); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("dataset: close %s: %w", a.tmpPath, err)
	}
	if err := os.Rename(a.tmpPath, a.store.Path); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("dataset: replace %s: %w", a.store.Path, err)
	}
	return nil
}

func (a *Appender) finish() error {
	if err := a.enc.Close(); err != nil {
		return fmt.Errorf("dataset: finish %s: %w", a.tmpPath, err)
	}
	if a.lz != nil {
		if err := a.lz.Close(); err != nil {
			return fmt.Errorf("dataset: close compressor: %w", err)
		}
	}
	if err := a.buf.Flush(); err != nil {
		return fmt.Errorf("dataset: flush %s: %w", a.tmpPath, err)
	}
	if err := a.file.Sync(); err != nil {
		return fmt.Errorf("dataset: sync %s: %w", a.tmpPath, err)
	}
	return nil
}

// Abort discards the temp file. It is a no-op after Commit.
func (a *Appender) Abort() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.file.Close()
	if err := os.Remove(a.tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("dataset: remove %s: %w", a.tmpPath, err)
	}
	return nil
}
