package ssm

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by the AddXEntry methods when the key is already
// present in the map.
var ErrDuplicateKey = errors.New("duplicated key")

func addEntry[V any](m *map[string]V, key string, value V) error {
	if *m == nil {
		*m = make(map[string]V)
	}
	if _, ok := (*m)[key]; ok {
		return fmt.Errorf("%w: %q is already provided", ErrDuplicateKey, key)
	}
	(*m)[key] = value
	return nil
}
