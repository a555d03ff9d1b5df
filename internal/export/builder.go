package export

import (
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/violet-to-doctrine/parser/internal/mapping"
)

// HCL file names produced by the Builder.
const (
	PackagesFile   = "packages.hcl"
	ClassesFile    = "classes.hcl"
	InterfacesFile = "interfaces.hcl"
)

// Builder lays a Document out as HCL, one file per block type.
type Builder struct {
	packages   *hclwrite.File
	classes    *hclwrite.File
	interfaces *hclwrite.File
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		packages:   hclwrite.NewEmptyFile(),
		classes:    hclwrite.NewEmptyFile(),
		interfaces: hclwrite.NewEmptyFile(),
	}
}

func appendBlock(f *hclwrite.File, block *hclwrite.Block) {
	body := f.Body()
	if len(body.Blocks()) > 0 {
		body.AppendNewline()
	}
	body.AppendBlock(block)
}

// AddPackage appends a package block.
func (b *Builder) AddPackage(p Package) {
	block := hclwrite.NewBlock(blockPackage, []string{SanitizeName(p.Name)})
	body := block.Body()
	SetAttributeStr(body, "name", p.Name)
	setRef(body, "parent", blockPackage, p.Parent)
	appendBlock(b.packages, block)
}

// AddClass appends a class block with nested property and method blocks.
func (b *Builder) AddClass(c Class) {
	block := hclwrite.NewBlock(blockClass, []string{SanitizeName(c.Name)})
	body := block.Body()
	SetAttributeStr(body, "name", c.Name)
	setRef(body, "package", blockPackage, c.Package)
	setRef(body, "extends", blockClass, c.Extends)
	setRefList(body, "implements", blockInterface, c.Implements)
	SetAttributeList(body, "used_root_packages", c.UsedRootPackages)

	for _, p := range c.Properties {
		body.AppendNewline()
		body.AppendBlock(propertyBlock(p))
	}
	for _, m := range c.Methods {
		body.AppendNewline()
		body.AppendBlock(methodBlock(m))
	}
	appendBlock(b.classes, block)
}

// AddInterface appends an interface block.
func (b *Builder) AddInterface(i Interface) {
	block := hclwrite.NewBlock(blockInterface, []string{SanitizeName(i.Name)})
	body := block.Body()
	SetAttributeStr(body, "name", i.Name)
	setRef(body, "package", blockPackage, i.Package)
	setRefList(body, "extends", blockInterface, i.Extends)
	SetAttributeList(body, "used_root_packages", i.UsedRootPackages)
	for _, m := range i.Methods {
		body.AppendNewline()
		body.AppendBlock(methodBlock(m))
	}
	appendBlock(b.interfaces, block)
}

func propertyBlock(p Property) *hclwrite.Block {
	block := hclwrite.NewBlock("property", []string{p.Name})
	body := block.Body()
	SetAttributeStr(body, "visibility", p.Visibility)
	SetAttributeStr(body, "type", p.Type)
	SetAttributeStr(body, "subtype", p.Subtype)
	SetAttributeStr(body, "default", p.Default)
	SetAttributeStr(body, "column", p.Mapping.Column)

	if rel := p.Relation; rel != nil {
		rb := body.AppendNewBlock("relation", nil).Body()
		setRef(rb, "target", blockClass, rel.Target)
		SetAttributeStr(rb, "cardinality", rel.Cardinality)
		SetAttributeStr(rb, "shape", rel.Shape)
		SetAttributeStr(rb, "other_side_shape", rel.OtherSideShape)
		SetAttributeStr(rb, "other_side", rel.OtherSide)
		SetAttributeBool(rb, "owning", rel.Owning)

		if a := p.Mapping.Association; a != nil {
			SetAttributeStr(rb, "mapped_by", a.MappedBy)
			SetAttributeStr(rb, "inversed_by", a.InversedBy)
			if a.JoinColumn != nil {
				SetAttributeStr(rb, "join_column", a.JoinColumn.Name)
			}
			if t := a.JoinTable; t != nil {
				tb := rb.AppendNewBlock("join_table", []string{t.Name}).Body()
				for _, jc := range t.JoinColumns {
					joinColumnBlock(tb, "join_column", jc)
				}
				for _, jc := range t.InverseJoinColumns {
					joinColumnBlock(tb, "inverse_join_column", jc)
				}
			}
		}
	}
	return block
}

func joinColumnBlock(body *hclwrite.Body, blockType string, jc mapping.JoinColumn) {
	cb := body.AppendNewBlock(blockType, []string{jc.Name}).Body()
	SetAttributeStr(cb, "references", jc.ReferencedColumnName)
	if jc.Unique {
		SetAttributeBool(cb, "unique", true)
	}
}

func methodBlock(m Method) *hclwrite.Block {
	block := hclwrite.NewBlock("method", []string{m.Name})
	body := block.Body()
	SetAttributeStr(body, "visibility", m.Visibility)
	SetAttributeStr(body, "returns", m.Returns)
	SetAttributeStr(body, "returns_subtype", m.ReturnsSubtype)
	for _, a := range m.Args {
		SetAttributeStr(body.AppendNewBlock("argument", []string{a.Name}).Body(), "type", a.Type)
	}
	return block
}

// Build returns a map of filename -> content for the non-empty HCL files.
func (b *Builder) Build() map[string][]byte {
	out := make(map[string][]byte)
	if len(b.packages.Body().Blocks()) > 0 {
		out[PackagesFile] = b.packages.Bytes()
	}
	if len(b.classes.Body().Blocks()) > 0 {
		out[ClassesFile] = b.classes.Bytes()
	}
	if len(b.interfaces.Body().Blocks()) > 0 {
		out[InterfacesFile] = b.interfaces.Bytes()
	}
	return out
}
