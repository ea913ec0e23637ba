// Package props implements the .properties line syntax: the layer between
// text streams and ordered key/value pair sequences.
//
// The format is line oriented. A natural line is terminated by \n, \r, or
// \r\n; a logical line joins natural lines whose terminator is escaped by
// a trailing backslash, with the continuation's leading whitespace
// stripped. Lines whose first non-blank character is '#' or '!' are
// comments. Within a logical line the key runs to the first unescaped '=',
// ':', or whitespace; surrounding whitespace and one optional '=' or ':'
// after a whitespace terminator are absorbed before the value.
//
// Escape sequences \t \n \f \r \\ and \uXXXX (with surrogate pairs for
// runes beyond U+FFFF) are decoded on read and produced on write; an
// unrecognized escape drops the backslash, as Java's loader does.
//
// Scanner yields pairs in document order. Writer emits one escaped pair
// per line with a configurable separator and line ending. Load folds a
// whole stream into the flattened last-value-wins mapping used by the
// typed decoder.
//
// This package carries all global format state; the typed codec above it
// has zero dependence on text layout details.
package props
