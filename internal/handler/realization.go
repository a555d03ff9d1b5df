package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/registry"
	"github.com/violet-to-doctrine/parser/internal/result"
)

type realizationHandler struct{}

func init() {
	registry.Default.Register("triangle-dotted", &realizationHandler{})
}

func (realizationHandler) Kind() diagram.ConnectionKind { return diagram.ConnectionRealization }

// Connect records that class from implements interface to. Any other
// combination is an illegal realization and the edge is dropped.
func (realizationHandler) Connect(from, to diagram.Type) ([]result.Error, []result.Warning) {
	class, ok := from.(*diagram.Class)
	if !ok {
		return []result.Error{result.IllegalRealization(subject(from, to),
			"only a class can implement an interface, "+from.FullName()+" is an "+from.Kind().String())}, nil
	}
	iface, ok := to.(*diagram.Interface)
	if !ok {
		return []result.Error{result.IllegalRealization(subject(from, to),
			"a class can only implement an interface, "+to.FullName()+" is a "+to.Kind().String())}, nil
	}
	for _, existing := range class.Implements {
		if existing == iface {
			return nil, nil
		}
	}
	class.Implements = append(class.Implements, iface)
	return nil, nil
}
