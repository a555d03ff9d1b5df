// Package relation infers association metadata from the aggregation and
// composition edges of a diagram and the properties that carry them.
package relation

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// match is the property a class uses to point at a related class. many is
// set for a collection match (Collection<R>), unset for a singular one.
type match struct {
	prop *diagram.Property
	many bool
}

func (m match) shape() diagram.RelationShape {
	if m.many {
		return diagram.HasMany
	}
	return diagram.HasOne
}

// findOwningProperty scans t's properties, then those of its superclasses,
// for the first property typed r or holding a collection of r.
func findOwningProperty(t, r *diagram.Class, ignoring *diagram.Property) match {
	seen := make(map[*diagram.Class]bool)
	for class := t; class != nil && !seen[class]; class = class.Extends {
		seen[class] = true
		for _, p := range class.Properties {
			if p == ignoring {
				continue
			}
			if p.Type.Is(r) {
				return match{prop: p}
			}
			if p.Subtype.Is(r) {
				return match{prop: p, many: true}
			}
		}
	}
	return match{}
}

type pair struct {
	kind diagram.RelationKind
	a, b *diagram.Class
}

func newPair(kind diagram.RelationKind, x, y *diagram.Class) pair {
	if y.FullName() < x.FullName() {
		x, y = y, x
	}
	return pair{kind: kind, a: x, b: y}
}

// Resolve sets Relation, RelationType and OtherSideRelationType on the
// properties that carry each aggregation and composition of m. Edges no
// property can carry are returned, once per pair of classes and kind, in
// class name order. The model must not be resolved twice.
func Resolve(m *diagram.Model) []result.Error {
	var errs []result.Error
	reported := make(map[pair]bool)

	for _, t := range m.Classes() {
		for _, kind := range diagram.RelationKinds {
			for _, r := range t.Relations[kind] {
				left := findOwningProperty(t, r, nil)
				right := findOwningProperty(r, t, left.prop)

				if left.prop == nil && right.prop == nil {
					key := newPair(kind, t, r)
					if !reported[key] {
						reported[key] = true
						errs = append(errs, result.UnresolvableRelation(
							t.FullName()+" -> "+r.FullName(),
							"no property of "+t.FullName()+" or "+r.FullName()+" carries the "+string(kind)))
					}
					continue
				}
				if left.prop == nil {
					// the edge is carried from r's side and resolved when r is visited
					continue
				}

				left.prop.RelationType = left.shape()
				left.prop.Relation = r

				if right.prop != nil {
					if right.prop.Owner == left.prop.Owner {
						right.prop.RelationType = right.shape()
						right.prop.Relation = t
					}
					continue
				}

				if kind == diagram.Aggregation && t.RelationCount(diagram.Aggregation, r) <= 1 {
					switch left.prop.RelationType {
					case diagram.HasOne:
						left.prop.OtherSideRelationType = diagram.HasMany
					case diagram.HasMany:
						left.prop.OtherSideRelationType = diagram.HasOne
					}
				}
			}
		}
	}

	// settle every other-side lookup while the model is still private to
	// this call, so later readers never write to the cache
	for _, c := range m.Classes() {
		for _, p := range c.Properties {
			p.OtherSide()
		}
	}
	return errs
}
