package history

import "fmt"

var (
	// ErrEntryNotFound is returned when a history entry with the given id
	// does not exist in the underlying store.
	ErrEntryNotFound = fmt.Errorf("history entry not found")
)
