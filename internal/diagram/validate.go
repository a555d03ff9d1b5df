package diagram

import (
	"errors"
	"fmt"
)

// ErrInheritanceCycle is returned when a superclass chain loops.
var ErrInheritanceCycle = errors.New("inheritance cycle detected")

// ValidationError represents a structural problem that makes the model unusable.
type ValidationError struct {
	Type    string `json:"type"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Subject == "" {
		return e.Message
	}
	return e.Subject + ": " + e.Message
}

// Validate checks the invariants resolution relies on: every package and
// type is named, fully-qualified names are unique, and superclass chains
// terminate.
func Validate(packages []*Package, types []Type) []ValidationError {
	var errs []ValidationError

	seenPackages := make(map[string]bool)
	for i, p := range packages {
		name := p.FullName()
		if p.Name == "" {
			errs = append(errs, ValidationError{
				Type: "schema_error", Subject: p.ID,
				Message: fmt.Sprintf("package at index %d has empty name", i),
			})
			continue
		}
		if seenPackages[name] {
			errs = append(errs, ValidationError{
				Type: "schema_error", Subject: name,
				Message: "duplicate package name: " + name,
			})
		}
		seenPackages[name] = true
	}

	seenTypes := make(map[string]bool)
	for i, t := range types {
		meta := t.Meta()
		name := t.FullName()
		if meta.Name == "" {
			errs = append(errs, ValidationError{
				Type: "schema_error", Subject: meta.ID,
				Message: fmt.Sprintf("%s at index %d has empty name", t.Kind(), i),
			})
			continue
		}
		if seenTypes[name] {
			errs = append(errs, ValidationError{
				Type: "schema_error", Subject: name,
				Message: "duplicate type name: " + name,
			})
		}
		seenTypes[name] = true

		if c, ok := t.(*Class); ok {
			if _, err := c.Ancestors(); err != nil {
				errs = append(errs, ValidationError{
					Type: "inheritance_error", Subject: name,
					Message: err.Error(),
				})
			}
		}
	}

	return errs
}
