package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

func init() {
	Register(Format{
		Name:       "json",
		Extension:  ".json",
		NewEncoder: newArrayEncoder,
		NewDecoder: newRecordDecoder,
	})
	Register(Format{
		Name:       "jsonl",
		Extension:  ".jsonl",
		NewEncoder: newLinesEncoder,
		NewDecoder: newRecordDecoder,
	})
}

// marshal encodes s compactly without HTML escaping. Non-ASCII text is
// written as-is.
func marshal(s Sample) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("dataset: encode sample: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// arrayEncoder streams a single JSON array indented by two spaces, matching
// what a full in-memory dump with indent 2 would produce.
type arrayEncoder struct {
	w     io.Writer
	buf   bytes.Buffer
	count int
}

func newArrayEncoder(w io.Writer) Encoder {
	return &arrayEncoder{w: w}
}

func (e *arrayEncoder) Encode(s Sample) error {
	rec, err := marshal(s)
	if err != nil {
		return err
	}
	return e.EncodeRaw(rec)
}

func (e *arrayEncoder) EncodeRaw(rec json.RawMessage) error {
	e.buf.Reset()
	if e.count == 0 {
		e.buf.WriteString("[\n  ")
	} else {
		e.buf.WriteString(",\n  ")
	}
	if err := json.Indent(&e.buf, rec, "  ", "  "); err != nil {
		return fmt.Errorf("dataset: indent record: %w", err)
	}
	if _, err := e.w.Write(e.buf.Bytes()); err != nil {
		return err
	}
	e.count++
	return nil
}

func (e *arrayEncoder) Close() error {
	trailer := "\n]"
	if e.count == 0 {
		trailer = "[]"
	}
	_, err := io.WriteString(e.w, trailer)
	return err
}

type linesEncoder struct {
	w   io.Writer
	buf bytes.Buffer
}

func newLinesEncoder(w io.Writer) Encoder {
	return &linesEncoder{w: w}
}

func (e *linesEncoder) Encode(s Sample) error {
	rec, err := marshal(s)
	if err != nil {
		return err
	}
	return e.EncodeRaw(rec)
}

func (e *linesEncoder) EncodeRaw(rec json.RawMessage) error {
	e.buf.Reset()
	if err := json.Compact(&e.buf, rec); err != nil {
		return fmt.Errorf("dataset: compact record: %w", err)
	}
	e.buf.WriteByte('\n')
	_, err := e.w.Write(e.buf.Bytes())
	return err
}

func (e *linesEncoder) Close() error {
	return nil
}

// recordDecoder reads either layout: the elements of a top-level array, or a
// stream of whitespace-separated values. Records are returned unchanged, so
// only broken JSON syntax is an error. An empty stream holds no records.
type recordDecoder struct {
	r     *bufio.Reader
	dec   *json.Decoder
	array bool
	done  bool
}

func newRecordDecoder(r io.Reader) Decoder {
	return &recordDecoder{r: bufio.NewReader(r)}
}

func (d *recordDecoder) Decode() (json.RawMessage, error) {
	if d.done {
		return nil, io.EOF
	}
	if d.dec == nil {
		if err := d.start(); err != nil {
			return nil, err
		}
		if d.done {
			return nil, io.EOF
		}
	}
	if d.array {
		return d.element()
	}
	var rec json.RawMessage
	if err := d.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			d.done = true
			return nil, io.EOF
		}
		return nil, malformed(err)
	}
	return nullable(rec), nil
}

func (d *recordDecoder) start() error {
	first, err := skipSpace(d.r)
	if errors.Is(err, io.EOF) {
		d.done = true
		return nil
	}
	if err != nil {
		return err
	}
	d.dec = json.NewDecoder(d.r)
	if first != '[' {
		return nil
	}
	if _, err := d.dec.Token(); err != nil {
		return malformed(err)
	}
	d.array = true
	return nil
}

func (d *recordDecoder) element() (json.RawMessage, error) {
	if d.dec.More() {
		var rec json.RawMessage
		if err := d.dec.Decode(&rec); err != nil {
			return nil, malformed(err)
		}
		return nullable(rec), nil
	}
	tok, err := d.dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != ']' {
		return nil, malformed(fmt.Errorf("expected end of array, got %v", tok))
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed(errors.New("trailing data after array"))
	}
	d.done = true
	return nil, io.EOF
}

// skipSpace consumes leading JSON whitespace and peeks at the next byte.
func skipSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, r.UnreadByte()
	}
}

func nullable(rec json.RawMessage) json.RawMessage {
	if rec == nil {
		return json.RawMessage("null")
	}
	return rec
}
