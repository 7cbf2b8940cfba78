package store

import (
	"fmt"

	"bakeryctl/domain"
)

// NewStore constructs a domain.StateStore by kind: "memory" or "file".
// For the file store, provide the state file path; for memory, path is ignored.
func NewStore(kind, path string) (domain.StateStore, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryStore(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file store")
		}
		return NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
