package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/registry"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// structuralHandler records aggregations and compositions on both
// endpoints; relationship resolution turns them into associations later.
type structuralHandler struct {
	kind     diagram.ConnectionKind
	relation diagram.RelationKind
}

func init() {
	registry.Default.Register("diamond-", &structuralHandler{
		kind: diagram.ConnectionAggregation, relation: diagram.Aggregation,
	})
	registry.Default.Register("black_diamond-", &structuralHandler{
		kind: diagram.ConnectionComposition, relation: diagram.Composition,
	})
}

func (h *structuralHandler) Kind() diagram.ConnectionKind { return h.kind }

func (h *structuralHandler) Connect(from, to diagram.Type) ([]result.Error, []result.Warning) {
	whole, part, ok := classes(from, to)
	if !ok {
		return nil, ignored(h.kind, from, to)
	}
	whole.AddRelation(h.relation, part)
	return nil, nil
}
