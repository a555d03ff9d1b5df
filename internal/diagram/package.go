package diagram

import (
	"errors"
	"strings"
)

// NamespaceSeparator joins package and type names into fully-qualified names.
const NamespaceSeparator = `\`

// ErrPackageCycle is returned when a package would become its own ancestor.
var ErrPackageCycle = errors.New("package cycle detected")

// Package is a node of the package tree. Root packages have no Parent.
type Package struct {
	ID       string
	Name     string
	Parent   *Package
	Packages []*Package
	Types    []Type
}

// FullName returns the parent chain joined with the package name.
func (p *Package) FullName() string {
	if p == nil {
		return ""
	}
	if p.Parent == nil {
		return p.Name
	}
	return p.Parent.FullName() + NamespaceSeparator + p.Name
}

// Root returns the top-level package p belongs to (p itself for a root package).
func (p *Package) Root() *Package {
	root := p
	for root != nil && root.Parent != nil {
		root = root.Parent
	}
	return root
}

// Package returns the direct child package with the given name.
func (p *Package) Package(name string) (*Package, bool) {
	for _, child := range p.Packages {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// Type returns the directly declared type with the given simple name.
func (p *Package) Type(name string) (Type, bool) {
	for _, t := range p.Types {
		if t.Meta().Name == name {
			return t, true
		}
	}
	return nil, false
}

// AddPackage makes child a sub-package of p, detaching it from its previous parent.
func (p *Package) AddPackage(child *Package) error {
	for anc := p; anc != nil; anc = anc.Parent {
		if anc == child {
			return ErrPackageCycle
		}
	}
	if child.Parent != nil {
		child.Parent.Packages = removePackage(child.Parent.Packages, child)
	}
	child.Parent = p
	p.Packages = append(p.Packages, child)
	return nil
}

// AddType makes p the owning package of t, detaching it from its previous package.
func (p *Package) AddType(t Type) {
	meta := t.Meta()
	if meta.Package != nil {
		meta.Package.Types = removeType(meta.Package.Types, t)
	}
	meta.Package = p
	p.Types = append(p.Types, t)
}

// IsWithin reports whether p is other or one of its descendants.
func (p *Package) IsWithin(other *Package) bool {
	for anc := p; anc != nil; anc = anc.Parent {
		if anc == other {
			return true
		}
	}
	return false
}

func removePackage(list []*Package, p *Package) []*Package {
	out := list[:0]
	for _, item := range list {
		if item != p {
			out = append(out, item)
		}
	}
	return out
}

func removeType(list []Type, t Type) []Type {
	out := list[:0]
	for _, item := range list {
		if item != t {
			out = append(out, item)
		}
	}
	return out
}

// TrimNamespace strips a leading namespace separator from a qualified name.
func TrimNamespace(name string) string {
	return strings.TrimPrefix(name, NamespaceSeparator)
}
