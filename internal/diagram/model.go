package diagram

import "sort"

// Model is the resolved diagram: packages and types ordered by
// fully-qualified name.
type Model struct {
	Packages []*Package
	Types    []Type

	packages map[string]*Package
	types    map[string]Type
}

// NewModel indexes packages and types by fully-qualified name and sorts
// them. Names must be unique; see Validate.
func NewModel(packages []*Package, types []Type) *Model {
	m := &Model{
		Packages: append([]*Package(nil), packages...),
		Types:    append([]Type(nil), types...),
		packages: make(map[string]*Package, len(packages)),
		types:    make(map[string]Type, len(types)),
	}
	sort.SliceStable(m.Packages, func(i, j int) bool {
		return m.Packages[i].FullName() < m.Packages[j].FullName()
	})
	sort.SliceStable(m.Types, func(i, j int) bool {
		return m.Types[i].FullName() < m.Types[j].FullName()
	})
	for _, p := range m.Packages {
		m.packages[p.FullName()] = p
	}
	for _, t := range m.Types {
		m.types[t.FullName()] = t
	}
	return m
}

// Package looks a package up by fully-qualified name.
func (m *Model) Package(fullName string) (*Package, bool) {
	p, ok := m.packages[TrimNamespace(fullName)]
	return p, ok
}

// Type looks a type up by fully-qualified name.
func (m *Model) Type(fullName string) (Type, bool) {
	t, ok := m.types[TrimNamespace(fullName)]
	return t, ok
}

// Class looks a class up by fully-qualified name.
func (m *Model) Class(fullName string) (*Class, bool) {
	t, ok := m.Type(fullName)
	if !ok {
		return nil, false
	}
	c, ok := t.(*Class)
	return c, ok
}

// Classes returns the classes in name order.
func (m *Model) Classes() []*Class {
	var out []*Class
	for _, t := range m.Types {
		if c, ok := t.(*Class); ok {
			out = append(out, c)
		}
	}
	return out
}

// Interfaces returns the interfaces in name order.
func (m *Model) Interfaces() []*Interface {
	var out []*Interface
	for _, t := range m.Types {
		if i, ok := t.(*Interface); ok {
			out = append(out, i)
		}
	}
	return out
}

// PackageNames returns the sorted fully-qualified package names.
func (m *Model) PackageNames() []string {
	names := make([]string, len(m.Packages))
	for i, p := range m.Packages {
		names[i] = p.FullName()
	}
	return names
}

// TypeNames returns the sorted fully-qualified type names.
func (m *Model) TypeNames() []string {
	names := make([]string, len(m.Types))
	for i, t := range m.Types {
		names[i] = t.FullName()
	}
	return names
}
