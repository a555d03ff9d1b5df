// Package dependency checks that the supertype graph of a diagram is
// acyclic.
package dependency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// ErrCycle is returned when the supertype graph contains a cycle.
var ErrCycle = errors.New("inheritance cycle detected")

// supertypes returns the direct supertypes of t: the superclass and
// implemented interfaces of a class, the extended interfaces of an interface.
func supertypes(t diagram.Type) []diagram.Type {
	var out []diagram.Type
	switch t := t.(type) {
	case *diagram.Class:
		if t.Extends != nil {
			out = append(out, t.Extends)
		}
		for _, i := range t.Implements {
			out = append(out, i)
		}
	case *diagram.Interface:
		for _, i := range t.Extends {
			out = append(out, i)
		}
	}
	return out
}

// Check peels types off the supertype graph, supertypes first, and returns
// ErrCycle naming every type left over once no more can be removed.
// Supertypes outside types are ignored.
func Check(types []diagram.Type) error {
	known := make(map[diagram.Type]bool, len(types))
	for _, t := range types {
		known[t] = true
	}

	// subtype depends on supertype => inDegree[subtype] = number of known supertypes
	inDegree := make(map[diagram.Type]int, len(types))
	subtypes := make(map[diagram.Type][]diagram.Type)
	for _, t := range types {
		for _, super := range supertypes(t) {
			if !known[super] {
				continue
			}
			inDegree[t]++
			subtypes[super] = append(subtypes[super], t)
		}
	}

	var queue []diagram.Type
	for _, t := range types {
		if inDegree[t] == 0 {
			queue = append(queue, t)
		}
	}
	removed := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		removed++
		for _, v := range subtypes[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if removed == len(types) {
		return nil
	}
	var stuck []string
	for _, t := range types {
		if inDegree[t] > 0 {
			stuck = append(stuck, t.FullName())
		}
	}
	return fmt.Errorf("%w: %s", ErrCycle, strings.Join(stuck, ", "))
}
