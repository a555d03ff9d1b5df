package diagram

import "sort"

// TypeKind distinguishes the two type capabilities a diagram can declare.
type TypeKind int

const (
	KindClass TypeKind = iota + 1
	KindInterface
)

func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	}
	return "unknown"
}

// Type is a class or an interface declared in the diagram.
type Type interface {
	Meta() *TypeMeta
	Kind() TypeKind
	FullName() string
	// RelativeName renders ref as seen from this type: the simple name when
	// both live in the same package, the fully-qualified name otherwise.
	RelativeName(ref TypeRef) string
	RootPackage() string
	UsedRootPackages() []string
	MethodList() []*Method
}

// TypeMeta holds the identity shared by classes and interfaces.
type TypeMeta struct {
	ID      string
	Name    string
	Package *Package
}

// Meta returns m itself; it lets Type implementations expose their identity.
func (m *TypeMeta) Meta() *TypeMeta { return m }

// FullName returns the owning package chain joined with the type name.
func (m *TypeMeta) FullName() string {
	if m.Package == nil {
		return m.Name
	}
	return m.Package.FullName() + NamespaceSeparator + m.Name
}

// RootPackage returns the full name of the top-level package, or "" for root types.
func (m *TypeMeta) RootPackage() string {
	return m.Package.Root().FullName()
}

func (m *TypeMeta) RelativeName(ref TypeRef) string {
	if ref.Type == nil {
		return ref.Name
	}
	other := ref.Type.Meta()
	if other.Package != m.Package {
		return other.FullName()
	}
	return other.Name
}

// TypeRef is a type reference as written in member text. Type stays nil
// until the reference is resolved against the diagram; unresolved
// references are legal and denote primitive or external names.
type TypeRef struct {
	Name string
	Type Type
}

// Ref returns an unresolved reference to name.
func Ref(name string) TypeRef { return TypeRef{Name: name} }

// Resolved reports whether the reference points at a diagram type.
func (r TypeRef) Resolved() bool { return r.Type != nil }

// IsZero reports whether nothing was declared.
func (r TypeRef) IsZero() bool { return r.Name == "" && r.Type == nil }

// Is reports whether the reference resolves to t.
func (r TypeRef) Is(t Type) bool { return r.Type != nil && r.Type == t }

func (r TypeRef) String() string {
	if r.Type != nil {
		return r.Type.FullName()
	}
	return r.Name
}

// RootPackage returns the root package of the referenced type, if resolved.
func (r TypeRef) RootPackage() string {
	if r.Type == nil {
		return ""
	}
	return r.Type.RootPackage()
}

// RelationKind names the structural connection lists kept on a class.
type RelationKind string

const (
	Aggregation RelationKind = "aggregation"
	Composition RelationKind = "composition"
)

// RelationKinds lists the relation kinds in resolution order.
var RelationKinds = []RelationKind{Aggregation, Composition}

// Class is a diagram class: the unit that becomes a persistent entity.
type Class struct {
	TypeMeta

	Properties []*Property
	Methods    []*Method
	Extends    *Class
	Implements []*Interface
	Relations  map[RelationKind][]*Class

	// Raw member text as found in the diagram, consumed by the lexer pass.
	PropertiesText string
	MethodsText    string
}

// NewClass returns an empty class.
func NewClass(name string) *Class {
	return &Class{
		TypeMeta:  TypeMeta{Name: name},
		Relations: make(map[RelationKind][]*Class),
	}
}

func (c *Class) Kind() TypeKind { return KindClass }

func (c *Class) MethodList() []*Method { return c.Methods }

func (c *Class) String() string { return c.FullName() }

// AddRelation records a structural connection on both endpoints. A
// self-relation is recorded once.
func (c *Class) AddRelation(kind RelationKind, other *Class) {
	c.Relations[kind] = append(c.Relations[kind], other)
	if other != c {
		other.Relations[kind] = append(other.Relations[kind], c)
	}
}

// RelationCount returns how many kind connections link c and other.
func (c *Class) RelationCount(kind RelationKind, other *Class) int {
	n := 0
	for _, rel := range c.Relations[kind] {
		if rel == other {
			n++
		}
	}
	return n
}

// AddProperty appends p and makes c its owner.
func (c *Class) AddProperty(p *Property) {
	p.Owner = c
	c.Properties = append(c.Properties, p)
}

// AddMethod appends m and makes c its owner.
func (c *Class) AddMethod(m *Method) {
	m.Owner = c
	c.Methods = append(c.Methods, m)
}

// Property returns the declared property with the given name.
func (c *Class) Property(name string) (*Property, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// HasCollections reports whether any property is a collection-shaped reference.
func (c *Class) HasCollections() bool {
	for _, p := range c.Properties {
		if p.IsCollection() {
			return true
		}
	}
	return false
}

// Ancestors returns the superclass chain, nearest first. A chain that
// revisits a class yields ErrInheritanceCycle.
func (c *Class) Ancestors() ([]*Class, error) {
	var chain []*Class
	seen := map[*Class]bool{c: true}
	for super := c.Extends; super != nil; super = super.Extends {
		if seen[super] {
			return nil, ErrInheritanceCycle
		}
		seen[super] = true
		chain = append(chain, super)
	}
	return chain, nil
}

func (c *Class) UsedRootPackages() []string {
	var packages []string
	if c.Extends != nil {
		packages = append(packages, c.Extends.RootPackage())
	}
	for _, iface := range c.Implements {
		packages = append(packages, iface.RootPackage())
	}
	for _, p := range c.Properties {
		packages = append(packages, p.Type.RootPackage(), p.Subtype.RootPackage())
		if p.Relation != nil {
			packages = append(packages, p.Relation.RootPackage())
		}
	}
	packages = append(packages, methodRootPackages(c.Methods)...)
	return uniqueSorted(packages)
}

// Interface is a diagram interface. Interfaces carry methods only.
type Interface struct {
	TypeMeta

	Extends []*Interface
	Methods []*Method

	MethodsText string
}

// NewInterface returns an empty interface.
func NewInterface(name string) *Interface {
	return &Interface{TypeMeta: TypeMeta{Name: name}}
}

func (i *Interface) Kind() TypeKind { return KindInterface }

func (i *Interface) MethodList() []*Method { return i.Methods }

func (i *Interface) String() string { return i.FullName() }

// AddMethod appends m and makes i its owner.
func (i *Interface) AddMethod(m *Method) {
	m.Owner = i
	i.Methods = append(i.Methods, m)
}

func (i *Interface) UsedRootPackages() []string {
	var packages []string
	for _, parent := range i.Extends {
		packages = append(packages, parent.RootPackage())
	}
	packages = append(packages, methodRootPackages(i.Methods)...)
	return uniqueSorted(packages)
}

func methodRootPackages(methods []*Method) []string {
	var packages []string
	for _, m := range methods {
		packages = append(packages, m.Returns.RootPackage(), m.ReturnsSubtype.RootPackage())
		for _, arg := range m.Args {
			packages = append(packages, arg.Type.RootPackage())
		}
	}
	return packages
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
