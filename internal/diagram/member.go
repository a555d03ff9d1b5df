package diagram

// Visibility of a property or method.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// DefaultTypeName is the declared type of members written without one.
const DefaultTypeName = "string"

// MixedTypeName is the type of method arguments written without one.
const MixedTypeName = "mixed"

// CollectionTypeName is the container name that renders as T[] in return types.
const CollectionTypeName = "Collection"

// Property is a class attribute. Relation metadata is filled in by
// relationship resolution and stays zero for plain columns.
type Property struct {
	Name         string
	Owner        *Class
	Visibility   Visibility
	Type         TypeRef
	Subtype      TypeRef
	DefaultValue string

	Relation              *Class
	RelationType          RelationShape
	OtherSideRelationType RelationShape

	otherSide sideCache
}

// NewProperty returns a private property of the default type.
func NewProperty(name string) *Property {
	return &Property{
		Name:       name,
		Visibility: Private,
		Type:       Ref(DefaultTypeName),
	}
}

func (p *Property) String() string {
	if p.Owner == nil {
		return p.Name
	}
	return p.Owner.FullName() + "::" + p.Name
}

// Argument is one method argument; order follows the declaration.
type Argument struct {
	Name string
	Type TypeRef
}

// Method is a class or interface operation.
type Method struct {
	Name           string
	Owner          Type
	Visibility     Visibility
	Args           []Argument
	Returns        TypeRef
	ReturnsSubtype TypeRef
}

// NewMethod returns a public method returning the default type.
func NewMethod(name string) *Method {
	return &Method{
		Name:       name,
		Visibility: Public,
		Returns:    Ref(DefaultTypeName),
	}
}

// SetArg sets the type of the named argument, keeping its original position
// when the name repeats.
func (m *Method) SetArg(name string, typ TypeRef) {
	for i := range m.Args {
		if m.Args[i].Name == name {
			m.Args[i].Type = typ
			return
		}
	}
	m.Args = append(m.Args, Argument{Name: name, Type: typ})
}

// Arg returns the named argument.
func (m *Method) Arg(name string) (Argument, bool) {
	for _, a := range m.Args {
		if a.Name == name {
			return a, true
		}
	}
	return Argument{}, false
}

// ReturnTypeName renders the return type as seen from viewer. A resolved
// Collection<T> renders as T[].
func (m *Method) ReturnTypeName(viewer Type) string {
	if m.Returns.Name == CollectionTypeName && m.Returns.Type == nil {
		if m.ReturnsSubtype.Resolved() {
			return viewer.RelativeName(m.ReturnsSubtype) + "[]"
		}
		return m.Returns.Name
	}
	return viewer.RelativeName(m.Returns)
}
