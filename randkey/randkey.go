// Package randkey mints random string keys for demoing and exercising the
// trie at scale without requiring real input data.
package randkey

import "github.com/google/uuid"

// Mint returns n freshly generated UUID strings, suitable as PATRICIA trie
// keys with no further formatting.
func Mint(n int) ([]string, error) {
	keys := make([]string, n)
	for i := range keys {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, err
		}
		keys[i] = id.String()
	}
	return keys, nil
}
