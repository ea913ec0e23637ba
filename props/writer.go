package props

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/propkit/javaprops/errors"
)

// Writer emits .properties line syntax, one key/value pair per line. It is
// solely responsible for escaping; callers supply logical strings.
type Writer struct {
	w   *bufio.Writer
	sep string
	eol string
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		sep: "=",
		eol: "\n",
	}
}

// SetSeparator sets the key/value separator. A separator is valid if it is
// non-empty and consists only of whitespace, except for a single optional
// '=' or ':'.
func (w *Writer) SetSeparator(sep string) error {
	if sep == "" {
		return errors.InvalidData(errors.PhaseWrite, nil, "separator must be non-empty")
	}
	kv := 0
	for _, c := range sep {
		switch c {
		case ' ', '\t', '\f':
		case '=', ':':
			kv++
		default:
			return errors.InvalidData(errors.PhaseWrite, nil,
				fmt.Sprintf("separator may only contain whitespace and one '=' or ':', got %q", sep))
		}
	}
	if kv > 1 {
		return errors.InvalidData(errors.PhaseWrite, nil,
			fmt.Sprintf("separator may contain at most one '=' or ':', got %q", sep))
	}
	w.sep = sep
	return nil
}

// SetLineEnding sets the line terminator to "\n", "\r", or "\r\n".
func (w *Writer) SetLineEnding(eol string) error {
	switch eol {
	case "\n", "\r", "\r\n":
		w.eol = eol
		return nil
	default:
		return errors.InvalidData(errors.PhaseWrite, nil, `line ending must be \n, \r, or \r\n`)
	}
}

// WritePair writes one escaped key/value line.
func (w *Writer) WritePair(key, value string) error {
	if key == "" {
		return errors.InvalidKey(errors.PhaseWrite, nil, key)
	}
	if _, err := w.w.WriteString(escapeKey(key)); err != nil {
		return err
	}
	if _, err := w.w.WriteString(w.sep); err != nil {
		return err
	}
	if _, err := w.w.WriteString(escapeValue(value)); err != nil {
		return err
	}
	if _, err := w.w.WriteString(w.eol); err != nil {
		return err
	}
	return nil
}

// WriteComment writes a '#' comment line, splitting on embedded newlines.
func (w *Writer) WriteComment(comment string) error {
	for _, line := range strings.Split(comment, "\n") {
		if _, err := fmt.Fprintf(w.w, "# %s%s", line, w.eol); err != nil {
			return err
		}
	}
	return nil
}

// Flush drains the buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// escapeKey escapes every character a key position cannot carry raw:
// separators, comment starters, whitespace, backslash, and non-ASCII.
func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case ' ', '=', ':', '#', '!', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			writeEscapedRune(&b, r)
		}
	}
	return b.String()
}

// escapeValue escapes backslashes, control characters, non-ASCII, and
// leading whitespace. Interior spaces and separators are unambiguous after
// the separator and stay raw.
func escapeValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	leading := true
	for _, r := range value {
		if leading && (r == ' ' || r == '\t' || r == '\f') {
			if r == ' ' {
				b.WriteString(`\ `)
			} else {
				writeEscapedRune(&b, r)
			}
			continue
		}
		leading = false
		if r == '\\' {
			b.WriteString(`\\`)
			continue
		}
		writeEscapedRune(&b, r)
	}
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '\t':
		b.WriteString(`\t`)
	case '\n':
		b.WriteString(`\n`)
	case '\f':
		b.WriteString(`\f`)
	case '\r':
		b.WriteString(`\r`)
	default:
		if r < 0x20 || r > 0x7e {
			writeUnicodeEscape(b, r)
		} else {
			b.WriteRune(r)
		}
	}
}

// writeUnicodeEscape writes \uXXXX per UTF-16 unit, using a surrogate pair
// for runes beyond the basic multilingual plane.
func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(b, `\u%04X\u%04X`, hi, lo)
		return
	}
	fmt.Fprintf(b, `\u%04X`, r)
}
