package javaprops

import (
	"bytes"
	"io"

	"github.com/propkit/javaprops/codec"
	"github.com/propkit/javaprops/props"
)

// Option configures an Encoder or Decoder.
type Option func(*config)

type config struct {
	separator  string
	lineEnding string
	tagKey     string
}

// WithSeparator sets the key/value separator written between pairs. A
// separator is valid if it is non-empty and consists only of whitespace,
// except for a single optional '=' or ':'.
func WithSeparator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// WithLineEnding sets the line terminator to "\n", "\r", or "\r\n".
func WithLineEnding(eol string) Option {
	return func(c *config) { c.lineEnding = eol }
}

// WithTagKey reserves a conventional key that carries a variant's active
// tag, enabling tag recovery for types implementing codec.VariantSelector.
func WithTagKey(key string) Option {
	return func(c *config) { c.tagKey = key }
}

// Encoder writes typed values as .properties text.
type Encoder struct {
	w   *props.Writer
	enc *codec.Encoder
	err error
}

// NewEncoder returns an Encoder writing to w. Invalid options surface on
// the first Encode call.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	pw := props.NewWriter(w)
	e := &Encoder{w: pw, enc: codec.NewEncoder()}
	if c.separator != "" {
		e.err = pw.SetSeparator(c.separator)
	}
	if e.err == nil && c.lineEnding != "" {
		e.err = pw.SetLineEnding(c.lineEnding)
	}
	if c.tagKey != "" {
		e.enc.SetTagKey(c.tagKey)
	}
	return e
}

// Encode writes one document. v must satisfy the root grammar: a struct,
// a map with string keys, a variant, or an option of these.
func (e *Encoder) Encode(v any) error {
	if e.err != nil {
		return e.err
	}
	if err := e.enc.Encode(v, e.w); err != nil {
		return err
	}
	return e.w.Flush()
}

// Decoder reads .properties text into typed values.
type Decoder struct {
	r   io.Reader
	dec *codec.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	dec := codec.NewDecoder()
	if c.tagKey != "" {
		dec.SetTagKey(c.tagKey)
	}
	return &Decoder{r: r, dec: dec}
}

// Decode reads the whole stream, folds duplicate keys (last value wins),
// and fills v, which must be a non-nil pointer to a root-grammar shape.
func (d *Decoder) Decode(v any) error {
	doc, err := props.Load(d.r)
	if err != nil {
		return err
	}
	return d.dec.Decode(doc, v)
}

// Marshal encodes v to .properties text.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes .properties text into v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
