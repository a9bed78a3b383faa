package registry

import "fmt"

// DuplicateError reports a second registration of an existing key.
type DuplicateError struct {
	Registry string
	Key      string
	// Existing identifies the factory already registered under Key.
	Existing string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("registry %s: %q already registered by %s", e.Registry, e.Key, e.Existing)
}

// NotRegisteredError reports a lookup of an unknown key.
type NotRegisteredError struct {
	Registry  string
	Key       string
	Available []string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("registry %s: %q not registered, available: %v", e.Registry, e.Key, e.Available)
}

// MissingNameError reports a batch record without a "name" field.
type MissingNameError struct {
	Registry string
	Index    int
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("registry %s: record %d has no %q field", e.Registry, e.Index, "name")
}
