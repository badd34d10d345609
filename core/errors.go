package core

import "fmt"

// InvariantError describes a broken internal invariant
// It is raised with panic, never returned; HandleCrash reports it
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s: %s", e.Invariant, e.Detail)
}

// Violation panics with an InvariantError
func Violation(invariant, format string, args ...any) {
	panic(&InvariantError{
		Invariant: invariant,
		Detail:    fmt.Sprintf(format, args...),
	})
}
