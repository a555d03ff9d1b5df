// Package typeref resolves textual type names in member declarations to
// the diagram types they denote, by lexical package scope.
package typeref

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// Resolver resolves names against one model.
type Resolver struct {
	types []diagram.Type
}

// New returns a resolver over the model's types, scanned in name order
// when the lexical scope has no match.
func New(m *diagram.Model) *Resolver {
	return &Resolver{types: m.Types}
}

// Resolve returns ref bound to the nearest type named like it, looking at
// the origin's package first and then each enclosing package, then at the
// whole diagram. An unmatched name is returned unchanged. Resolving an
// already resolved reference is a no-op.
func (r *Resolver) Resolve(origin diagram.Type, ref diagram.TypeRef) diagram.TypeRef {
	if ref.Resolved() || ref.Name == "" {
		return ref
	}
	name := diagram.TrimNamespace(ref.Name)
	for pkg := origin.Meta().Package; pkg != nil; pkg = pkg.Parent {
		if t := match(pkg.Types, name); t != nil {
			return diagram.TypeRef{Name: ref.Name, Type: t}
		}
	}
	if t := match(r.types, name); t != nil {
		return diagram.TypeRef{Name: ref.Name, Type: t}
	}
	return ref
}

func match(types []diagram.Type, name string) diagram.Type {
	for _, t := range types {
		if t.Meta().Name == name || t.FullName() == name {
			return t
		}
	}
	return nil
}

// ResolveMembers rewrites every type reference declared by t's members.
func (r *Resolver) ResolveMembers(t diagram.Type) {
	if c, ok := t.(*diagram.Class); ok {
		for _, p := range c.Properties {
			p.Type = r.Resolve(c, p.Type)
			p.Subtype = r.Resolve(c, p.Subtype)
		}
	}
	for _, m := range t.MethodList() {
		m.Returns = r.Resolve(t, m.Returns)
		m.ReturnsSubtype = r.Resolve(t, m.ReturnsSubtype)
		for i := range m.Args {
			m.Args[i].Type = r.Resolve(t, m.Args[i].Type)
		}
	}
}

// ResolveAll resolves the members of every type in the model.
func ResolveAll(m *diagram.Model) {
	r := New(m)
	for _, t := range m.Types {
		r.ResolveMembers(t)
	}
}
