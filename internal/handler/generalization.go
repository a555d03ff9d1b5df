package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/registry"
	"github.com/violet-to-doctrine/parser/internal/result"
)

type generalizationHandler struct{}

func init() {
	registry.Default.Register("triangle-", &generalizationHandler{})
}

func (generalizationHandler) Kind() diagram.ConnectionKind { return diagram.ConnectionGeneralization }

// Connect makes from extend to. A class has a single superclass slot that
// the last generalization wins; interfaces accumulate parents.
func (generalizationHandler) Connect(from, to diagram.Type) ([]result.Error, []result.Warning) {
	switch child := from.(type) {
	case *diagram.Class:
		if parent, ok := to.(*diagram.Class); ok {
			child.Extends = parent
			return nil, nil
		}
	case *diagram.Interface:
		if parent, ok := to.(*diagram.Interface); ok {
			child.Extends = append(child.Extends, parent)
			return nil, nil
		}
	}
	return nil, ignored(diagram.ConnectionGeneralization, from, to)
}
