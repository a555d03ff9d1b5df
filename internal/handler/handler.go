// Package handler implements the connection classification table. Each
// file registers the style signatures of one connection kind.
package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// subject renders an oriented connection for fault messages.
func subject(from, to diagram.Type) string {
	return from.FullName() + " -> " + to.FullName()
}

// classes returns both endpoints as classes when they are.
func classes(from, to diagram.Type) (*diagram.Class, *diagram.Class, bool) {
	a, ok := from.(*diagram.Class)
	if !ok {
		return nil, nil, false
	}
	b, ok := to.(*diagram.Class)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// ignored builds the warning for a connection whose endpoints cannot carry kind.
func ignored(kind diagram.ConnectionKind, from, to diagram.Type) []result.Warning {
	return []result.Warning{result.IgnoredConnection(subject(from, to),
		string(kind)+" between "+from.Kind().String()+" and "+to.Kind().String()+" is not supported")}
}

// passive handlers record a connection without changing the model.
type passive struct {
	kind diagram.ConnectionKind
}

func (p passive) Kind() diagram.ConnectionKind { return p.kind }

func (passive) Connect(from, to diagram.Type) ([]result.Error, []result.Warning) {
	return nil, nil
}
