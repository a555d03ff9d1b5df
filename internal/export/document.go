package export

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/mapping"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// Document is the serialisable form of a resolved diagram handed to code
// generators. Type references are fully-qualified when they resolve to a
// diagram type and literal otherwise.
type Document struct {
	Packages   []Package        `json:"packages" yaml:"packages"`
	Classes    []Class          `json:"classes" yaml:"classes"`
	Interfaces []Interface      `json:"interfaces" yaml:"interfaces"`
	Errors     []result.Error   `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings   []result.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type Package struct {
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

type Class struct {
	Name             string     `json:"name" yaml:"name"`
	Package          string     `json:"package,omitempty" yaml:"package,omitempty"`
	Extends          string     `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements       []string   `json:"implements,omitempty" yaml:"implements,omitempty"`
	UsedRootPackages []string   `json:"usedRootPackages,omitempty" yaml:"usedRootPackages,omitempty"`
	Properties       []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods          []Method   `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type Interface struct {
	Name             string   `json:"name" yaml:"name"`
	Package          string   `json:"package,omitempty" yaml:"package,omitempty"`
	Extends          []string `json:"extends,omitempty" yaml:"extends,omitempty"`
	UsedRootPackages []string `json:"usedRootPackages,omitempty" yaml:"usedRootPackages,omitempty"`
	Methods          []Method `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type Property struct {
	Name       string        `json:"name" yaml:"name"`
	Visibility string        `json:"visibility" yaml:"visibility"`
	Type       string        `json:"type" yaml:"type"`
	Subtype    string        `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Default    string        `json:"default,omitempty" yaml:"default,omitempty"`
	Relation   *Relation     `json:"relation,omitempty" yaml:"relation,omitempty"`
	Mapping    mapping.Field `json:"mapping" yaml:"mapping"`
}

// Relation is the association metadata of a property.
type Relation struct {
	Target         string `json:"target" yaml:"target"`
	Shape          string `json:"shape" yaml:"shape"`
	OtherSideShape string `json:"otherSideShape,omitempty" yaml:"otherSideShape,omitempty"`
	OtherSide      string `json:"otherSide,omitempty" yaml:"otherSide,omitempty"`
	Cardinality    string `json:"cardinality" yaml:"cardinality"`
	Owning         bool   `json:"owning" yaml:"owning"`
}

type Method struct {
	Name           string     `json:"name" yaml:"name"`
	Visibility     string     `json:"visibility" yaml:"visibility"`
	Returns        string     `json:"returns" yaml:"returns"`
	ReturnsSubtype string     `json:"returnsSubtype,omitempty" yaml:"returnsSubtype,omitempty"`
	Args           []Argument `json:"args,omitempty" yaml:"args,omitempty"`
}

type Argument struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// NewDocument converts a parse result. The model order (by fully-qualified
// name) is kept so rendering is deterministic.
func NewDocument(res *result.ParseResult) *Document {
	doc := &Document{Errors: res.Errors, Warnings: res.Warnings}
	m := res.Model
	if m == nil {
		return doc
	}
	for _, p := range m.Packages {
		doc.Packages = append(doc.Packages, Package{Name: p.FullName(), Parent: p.Parent.FullName()})
	}
	for _, c := range m.Classes() {
		doc.Classes = append(doc.Classes, newClass(c))
	}
	for _, i := range m.Interfaces() {
		doc.Interfaces = append(doc.Interfaces, newInterface(i))
	}
	return doc
}

func newClass(c *diagram.Class) Class {
	out := Class{
		Name:             c.FullName(),
		Package:          c.Package.FullName(),
		UsedRootPackages: c.UsedRootPackages(),
	}
	if c.Extends != nil {
		out.Extends = c.Extends.FullName()
	}
	for _, i := range c.Implements {
		out.Implements = append(out.Implements, i.FullName())
	}
	for _, p := range c.Properties {
		out.Properties = append(out.Properties, newProperty(p))
	}
	out.Methods = newMethods(c.Methods)
	return out
}

func newInterface(i *diagram.Interface) Interface {
	out := Interface{
		Name:             i.FullName(),
		Package:          i.Package.FullName(),
		UsedRootPackages: i.UsedRootPackages(),
		Methods:          newMethods(i.Methods),
	}
	for _, parent := range i.Extends {
		out.Extends = append(out.Extends, parent.FullName())
	}
	return out
}

func newProperty(p *diagram.Property) Property {
	out := Property{
		Name:       p.Name,
		Visibility: string(p.Visibility),
		Type:       typeName(p.Type),
		Subtype:    typeName(p.Subtype),
		Default:    p.DefaultValue,
		Mapping:    mapping.Describe(p),
	}
	if p.Relation != nil {
		rel := &Relation{
			Target:         p.Relation.FullName(),
			Shape:          string(p.RelationType),
			OtherSideShape: string(p.OtherSideRelationType),
			Cardinality:    p.Cardinality().String(),
			Owning:         p.IsOwningSide(),
		}
		if other := p.OtherSide(); other != nil {
			rel.OtherSide = other.Name
		}
		out.Relation = rel
	}
	return out
}

func newMethods(methods []*diagram.Method) []Method {
	var out []Method
	for _, m := range methods {
		method := Method{
			Name:           m.Name,
			Visibility:     string(m.Visibility),
			Returns:        typeName(m.Returns),
			ReturnsSubtype: typeName(m.ReturnsSubtype),
		}
		for _, a := range m.Args {
			method.Args = append(method.Args, Argument{Name: a.Name, Type: typeName(a.Type)})
		}
		out = append(out, method)
	}
	return out
}

func typeName(ref diagram.TypeRef) string {
	if ref.Type != nil {
		return ref.Type.FullName()
	}
	return ref.Name
}
