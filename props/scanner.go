package props

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/propkit/javaprops/errors"
)

// Scanner reads .properties line syntax and yields raw key/value pairs in
// document order. Comments, blank lines, line continuations, and escape
// sequences are consumed here; callers only ever see logical pairs.
type Scanner struct {
	r    *bufio.Reader
	line int
	done bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// ReadPair returns the next key/value pair. It returns io.EOF once the
// input is exhausted.
func (s *Scanner) ReadPair() (string, string, error) {
	for {
		logical, err := s.readLogicalLine()
		if err != nil {
			return "", "", err
		}
		if logical == "" {
			continue
		}
		return s.splitPair(logical)
	}
}

// Line returns the 1-based number of the last natural line read.
func (s *Scanner) Line() int {
	return s.line
}

// readLogicalLine returns the next non-comment logical line with
// continuations joined, or "" for lines that carry no pair.
func (s *Scanner) readLogicalLine() (string, error) {
	raw, err := s.readNaturalLine()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimLeft(raw, " \t\f")
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
		return "", nil
	}

	logical := trimmed
	for hasContinuation(logical) {
		logical = logical[:len(logical)-1]
		next, err := s.readNaturalLine()
		if err == io.EOF {
			// A trailing backslash on the last line is dropped, as Java does.
			return logical, nil
		}
		if err != nil {
			return "", err
		}
		logical += strings.TrimLeft(next, " \t\f")
	}
	return logical, nil
}

func (s *Scanner) readNaturalLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	raw, err := s.r.ReadString('\n')
	if err == io.EOF {
		s.done = true
		if raw == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err, "read input")
	}
	s.line++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	return raw, nil
}

// hasContinuation reports whether a line ends in an odd number of
// backslashes, i.e. the final backslash escapes the line terminator.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// splitPair separates a logical line into its unescaped key and value. The
// key ends at the first unescaped '=', ':', or whitespace; a whitespace
// terminator may be followed by one '=' or ':' and more whitespace before
// the value starts.
func (s *Scanner) splitPair(logical string) (string, string, error) {
	sep := -1
	wsSep := false
	for i := 0; i < len(logical); i++ {
		c := logical[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' {
			sep = i
			break
		}
		if c == ' ' || c == '\t' || c == '\f' {
			sep = i
			wsSep = true
			break
		}
	}

	if sep < 0 {
		key, err := s.unescape(logical)
		return key, "", err
	}

	rawKey := logical[:sep]
	rest := logical[sep:]
	if wsSep {
		rest = strings.TrimLeft(rest, " \t\f")
		if rest != "" && (rest[0] == '=' || rest[0] == ':') {
			rest = rest[1:]
		}
	} else {
		rest = rest[1:]
	}
	rest = strings.TrimLeft(rest, " \t\f")

	key, err := s.unescape(rawKey)
	if err != nil {
		return "", "", err
	}
	value, err := s.unescape(rest)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

func (s *Scanner) unescape(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		switch raw[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'u':
			r, next, err := s.decodeUnicode(raw, i+1)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i = next - 1
		default:
			// Java drops the backslash for unrecognized escapes.
			b.WriteByte(raw[i])
		}
	}
	return b.String(), nil
}

// decodeUnicode reads one \uXXXX unit starting at pos (after "\u") and, for
// a high surrogate, consumes its low-surrogate partner too. It returns the
// decoded rune and the index just past the consumed text.
func (s *Scanner) decodeUnicode(raw string, pos int) (rune, int, error) {
	u, err := s.hex4(raw, pos)
	if err != nil {
		return 0, 0, err
	}
	pos += 4

	if !utf16.IsSurrogate(rune(u)) {
		return rune(u), pos, nil
	}

	if pos+6 <= len(raw) && raw[pos] == '\\' && raw[pos+1] == 'u' {
		lo, err := s.hex4(raw, pos+2)
		if err != nil {
			return 0, 0, err
		}
		if r := utf16.DecodeRune(rune(u), rune(lo)); r != 0xFFFD {
			return r, pos + 6, nil
		}
	}
	return 0, 0, errors.InvalidEscape(s.line, "\\u"+raw[pos-4:pos])
}

func (s *Scanner) hex4(raw string, pos int) (uint32, error) {
	if pos+4 > len(raw) {
		return 0, errors.InvalidEscape(s.line, raw[pos-2:])
	}
	var u uint32
	for i := pos; i < pos+4; i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			u = u<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			u = u<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			u = u<<4 | uint32(c-'A'+10)
		default:
			return 0, errors.InvalidEscape(s.line, raw[pos-2:pos+4])
		}
	}
	return u, nil
}
