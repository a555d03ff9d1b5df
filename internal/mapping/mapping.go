// Package mapping derives the persistence mapping of resolved properties:
// column types for plain fields, association kinds, owning-side
// references, join columns and join tables.
package mapping

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/naming"
)

// ReferencedColumn is the primary key every join column points at.
const ReferencedColumn = "id"

type JoinColumn struct {
	Name                 string `json:"name" yaml:"name"`
	ReferencedColumnName string `json:"referencedColumnName" yaml:"referencedColumnName"`
	Unique               bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
}

type JoinTable struct {
	Name               string       `json:"name" yaml:"name"`
	JoinColumns        []JoinColumn `json:"joinColumns,omitempty" yaml:"joinColumns,omitempty"`
	InverseJoinColumns []JoinColumn `json:"inverseJoinColumns,omitempty" yaml:"inverseJoinColumns,omitempty"`
}

// Association describes one side of a relation.
type Association struct {
	Cardinality  string      `json:"cardinality" yaml:"cardinality"`
	TargetEntity string      `json:"targetEntity" yaml:"targetEntity"`
	MappedBy     string      `json:"mappedBy,omitempty" yaml:"mappedBy,omitempty"`
	InversedBy   string      `json:"inversedBy,omitempty" yaml:"inversedBy,omitempty"`
	JoinColumn   *JoinColumn `json:"joinColumn,omitempty" yaml:"joinColumn,omitempty"`
	JoinTable    *JoinTable  `json:"joinTable,omitempty" yaml:"joinTable,omitempty"`
}

// Field is the mapping of one property. Exactly one of Column and
// Association is set.
type Field struct {
	Name        string       `json:"name" yaml:"name"`
	VarType     string       `json:"varType" yaml:"varType"`
	Column      string       `json:"column,omitempty" yaml:"column,omitempty"`
	Association *Association `json:"association,omitempty" yaml:"association,omitempty"`
}

// Describe returns the mapping of p. Relations must already be resolved.
func Describe(p *diagram.Property) Field {
	owner := p.Owner
	f := Field{Name: p.Name, VarType: owner.RelativeName(p.Type)}
	if p.Relation == nil {
		if p.Type.Name == diagram.CollectionTypeName && !p.Subtype.IsZero() {
			f.Column = owner.RelativeName(p.Subtype)
		} else {
			f.Column = f.VarType
		}
		return f
	}

	cardinality := p.Cardinality()
	a := &Association{
		Cardinality:  cardinality.String(),
		TargetEntity: owner.RelativeName(diagram.TypeRef{Name: p.Relation.Name, Type: p.Relation}),
	}
	if other := p.OtherSide(); other != nil {
		if other.IsOwningSide() {
			a.MappedBy = other.Name
		} else {
			a.InversedBy = other.Name
		}
	}

	if p.IsOwningSide() {
		if cardinality != diagram.ManyToMany {
			jc := ownJoinColumn(p)
			a.JoinColumn = &jc
		}
		a.JoinTable = joinTable(p)
	}
	f.Association = a
	return f
}

func ownJoinColumn(p *diagram.Property) JoinColumn {
	return JoinColumn{Name: inflect.Singularize(p.Name) + "_id", ReferencedColumnName: ReferencedColumn}
}

func joinTable(p *diagram.Property) *JoinTable {
	switch {
	case p.IsOneToManyUnidirectional():
		jc := ownJoinColumn(p)
		jc.Unique = true
		return &JoinTable{
			Name:               tableName(p),
			JoinColumns:        []JoinColumn{jc},
			InverseJoinColumns: []JoinColumn{inverseJoinColumn(p)},
		}
	case p.IsManyToManyUnidirectional():
		return &JoinTable{
			Name:               tableName(p),
			JoinColumns:        []JoinColumn{ownJoinColumn(p)},
			InverseJoinColumns: []JoinColumn{inverseJoinColumn(p)},
		}
	case p.IsManyToManyBidirectional():
		return &JoinTable{Name: p.Name + "_" + p.OtherSide().Name}
	}
	return nil
}

// tableName joins the pluralised owner and target names: ones_twos.
func tableName(p *diagram.Property) string {
	return inflect.Pluralize(naming.Webalize(p.Owner.Name)) + "_" + inflect.Pluralize(naming.Webalize(p.Relation.Name))
}

func inverseJoinColumn(p *diagram.Property) JoinColumn {
	if other := p.OtherSide(); other != nil {
		return JoinColumn{Name: inflect.Singularize(other.Name) + "_id", ReferencedColumnName: ReferencedColumn}
	}
	return JoinColumn{Name: inflect.Singularize(naming.Webalize(p.Owner.Name)) + "_id", ReferencedColumnName: ReferencedColumn}
}

// Annotations renders f as ORM docblock annotations, one per line.
func (f Field) Annotations() []string {
	out := []string{"@var " + f.VarType}
	if f.Association == nil {
		return append(out, fmt.Sprintf("@Column(type=\"%s\")", f.Column))
	}
	a := f.Association

	rel := fmt.Sprintf("@%s(targetEntity=\"%s\"", a.Cardinality, a.TargetEntity)
	switch {
	case a.MappedBy != "":
		rel += fmt.Sprintf(", mappedBy=\"%s\"", a.MappedBy)
	case a.InversedBy != "":
		rel += fmt.Sprintf(", inversedBy=\"%s\"", a.InversedBy)
	}
	out = append(out, rel+")")

	if a.JoinColumn != nil {
		out = append(out, a.JoinColumn.annotation())
	}
	if t := a.JoinTable; t != nil {
		if len(t.JoinColumns) == 0 {
			return append(out, fmt.Sprintf("@JoinTable(name=\"%s\")", t.Name))
		}
		out = append(out, fmt.Sprintf("@JoinTable(name=\"%s\", joinColumns={%s}, inverseJoinColumns={%s})",
			t.Name, columns(t.JoinColumns), columns(t.InverseJoinColumns)))
	}
	return out
}

func (c JoinColumn) annotation() string {
	return fmt.Sprintf("@JoinColumn(name=\"%s\", referencedColumnName=\"%s\")", c.Name, c.ReferencedColumnName)
}

func columns(cols []JoinColumn) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.annotation()
		if c.Unique {
			parts[i] += ", unique=TRUE"
		}
	}
	return strings.Join(parts, ", ")
}
