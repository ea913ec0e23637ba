package props

import (
	"io"
)

// PairReader yields raw key/value pairs in document order, returning
// io.EOF when the input is exhausted. Scanner implements it.
type PairReader interface {
	ReadPair() (key, value string, err error)
}

// Flatten folds a pair sequence into the key to value mapping the typed
// decoder consumes. A later pair for the same key overwrites an earlier
// one, matching the host format's last-value-wins load semantics.
func Flatten(r PairReader) (map[string]string, error) {
	doc := make(map[string]string)
	for {
		key, value, err := r.ReadPair()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		doc[key] = value
	}
}

// Load reads .properties text and returns its flattened mapping.
func Load(r io.Reader) (map[string]string, error) {
	return Flatten(NewScanner(r))
}
