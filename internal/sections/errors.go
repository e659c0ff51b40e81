package sections

import "fmt"

// ErrUnknownSection indicates a section id that is not in the catalog.
type ErrUnknownSection struct {
	ID string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section: %s", e.ID)
}

// ErrAlwaysVisible indicates an attempt to hide a section that policy keeps
// visible.
type ErrAlwaysVisible struct {
	ID string
}

func (e *ErrAlwaysVisible) Error() string {
	return fmt.Sprintf("section cannot be hidden: %s", e.ID)
}

// ErrSaveFailed wraps a persistence callback failure. The in-memory order is
// kept as-is when this is returned; only the save is known to have failed.
type ErrSaveFailed struct {
	Cause error
}

func (e *ErrSaveFailed) Error() string {
	return fmt.Sprintf("section order save failed: %v", e.Cause)
}

func (e *ErrSaveFailed) Unwrap() error {
	return e.Cause
}
