package reader

import (
	"encoding/xml"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violet-to-doctrine/parser/internal/diagram"
	_ "github.com/violet-to-doctrine/parser/internal/handler"
	"github.com/violet-to-doctrine/parser/internal/result"
)

const violet = "com.horstmann.violet."

func doc(calls ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<java version="1.6.0" class="java.beans.XMLDecoder">
 <object class="` + violet + `ClassDiagramGraph">
` + strings.Join(calls, "\n") + `
 </object>
</java>`
}

func text(property, value string) string {
	var escaped strings.Builder
	_ = xml.EscapeText(&escaped, []byte(value))
	return fmt.Sprintf(`<void property=%q><void property="text"><string>%s</string></void></void>`, property, escaped.String())
}

func classNode(id, name, attributes string) string {
	return `<object class="` + violet + `ClassNode" id="` + id + `">` +
		text("name", name) + text("attributes", attributes) + `</object>`
}

func interfaceNode(id, name string) string {
	return `<object class="` + violet + `InterfaceNode" id="` + id + `">` + text("name", name) + `</object>`
}

func packageNode(id, name string, children ...string) string {
	var b strings.Builder
	b.WriteString(`<object class="` + violet + `PackageNode" id="` + id + `">`)
	for _, c := range children {
		b.WriteString(`<void method="addChild">` + c + `</void>`)
	}
	b.WriteString(`<void property="name"><string>` + name + `</string></void></object>`)
	return b.String()
}

func ref(id string) string { return `<object idref="` + id + `"/>` }

func addNode(node string) string {
	return `<void method="addNode">` + node +
		`<object class="java.awt.geom.Point2D$Double"><void method="setLocation"><double>1.0</double><double>2.0</double></void></object></void>`
}

// connect joins two endpoints; fields alternate property name and enum field.
func connect(from, to string, fields ...string) string {
	var b strings.Builder
	b.WriteString(`<void method="connect"><object class="` + violet + `ClassRelationshipEdge">`)
	for i := 0; i+1 < len(fields); i += 2 {
		b.WriteString(`<void property="` + fields[i] + `"><object class="` + violet + `ArrowHead" field="` + fields[i+1] + `"/></void>`)
	}
	b.WriteString(`<void property="middleLabel"><string>owns</string></void>`)
	b.WriteString(`</object>` + from + to + `</void>`)
	return b.String()
}

func read(t *testing.T, src string) *Output {
	t.Helper()
	out, err := Read([]byte(src), Options{})
	require.NoError(t, err)
	return out
}

func TestReadPackagesAndTypes(t *testing.T) {
	src := doc(
		addNode(packageNode("PackageNode0", "App",
			packageNode("PackageNode1", "Security", classNode("ClassNode0", "Účet", "- name")),
			interfaceNode("InterfaceNode0", "Identity"),
		)),
		addNode(classNode("ClassNode1", "Tag", "+ label : string")),
	)
	out := read(t, src)

	assert.Equal(t, []string{"App", `App\Security`}, out.Model.PackageNames())
	assert.Equal(t, []string{`App\Identity`, `App\Security\Ucet`, "Tag"}, out.Model.TypeNames())

	account, ok := out.Model.Class(`App\Security\Ucet`)
	require.True(t, ok)
	assert.Equal(t, "ClassNode0", account.ID)
	assert.Equal(t, "- name", account.PropertiesText)
	assert.Equal(t, "App", account.RootPackage())

	tag, _ := out.Model.Class("Tag")
	assert.Equal(t, "+ label : string", tag.PropertiesText)
	assert.Empty(t, tag.RootPackage())
	assert.Empty(t, out.Errors)
	assert.Empty(t, out.Warnings)
}

func TestReadReferencedChildIsReparented(t *testing.T) {
	src := doc(
		addNode(classNode("ClassNode0", "User", "")),
		addNode(packageNode("PackageNode0", "Old", ref("ClassNode0"))),
		addNode(packageNode("PackageNode1", "New", ref("ClassNode0"))),
	)
	out := read(t, src)

	assert.Equal(t, []string{`New\User`}, out.Model.TypeNames())
	old, _ := out.Model.Package("Old")
	assert.Empty(t, old.Types)
}

func TestReadGeneralizationAndRealization(t *testing.T) {
	src := doc(
		addNode(classNode("ClassNode0", "Base", "")),
		addNode(classNode("ClassNode1", "Child", "")),
		addNode(interfaceNode("InterfaceNode0", "Named")),
		addNode(interfaceNode("InterfaceNode1", "Labeled")),
		connect(ref("ClassNode1"), ref("ClassNode0"), "endArrowHead", "TRIANGLE"),
		connect(ref("ClassNode1"), ref("InterfaceNode0"), "endArrowHead", "TRIANGLE", "lineStyle", "DOTTED"),
		// start arrow head: the edge reads from its end
		connect(ref("InterfaceNode0"), ref("InterfaceNode1"), "startArrowHead", "TRIANGLE", "lineStyle", "SOLID"),
	)
	out := read(t, src)
	require.Empty(t, out.Errors)

	base, _ := out.Model.Class("Base")
	child, _ := out.Model.Class("Child")
	named, _ := out.Model.Type("Named")
	labeled, _ := out.Model.Type("Labeled")
	assert.Same(t, base, child.Extends)
	assert.Equal(t, []*diagram.Interface{named.(*diagram.Interface)}, child.Implements)
	assert.Equal(t, []*diagram.Interface{named.(*diagram.Interface)}, labeled.(*diagram.Interface).Extends)
}

func TestReadAggregation(t *testing.T) {
	src := doc(
		addNode(classNode("ClassNode0", "Order", "- lines : Collection<Line>")),
		addNode(classNode("ClassNode1", "Line", "")),
		connect(ref("ClassNode1"), ref("ClassNode0"), "startArrowHead", "DIAMOND"),
	)
	out := read(t, src)

	order, _ := out.Model.Class("Order")
	line, _ := out.Model.Class("Line")
	assert.Equal(t, 1, order.RelationCount(diagram.Aggregation, line))
	assert.Equal(t, 1, line.RelationCount(diagram.Aggregation, order))
}

func TestReadNonFatalFaults(t *testing.T) {
	src := doc(
		addNode(packageNode("PackageNode0", "App", classNode("ClassNode0", "User", ""))),
		addNode(interfaceNode("InterfaceNode0", "Named")),
		addNode(interfaceNode("InterfaceNode1", "Other")),
		connect(ref("InterfaceNode1"), ref("InterfaceNode0"), "endArrowHead", "TRIANGLE", "lineStyle", "DOTTED"),
		connect(ref("ClassNode0"), ref("PackageNode0"), "endArrowHead", "DIAMOND"),
		connect(ref("ClassNode0"), ref("InterfaceNode0"), "endArrowHead", "BLACK_DIAMOND"),
	)
	out := read(t, src)

	require.Len(t, out.Errors, 1)
	assert.Equal(t, result.TypeIllegalRealization, out.Errors[0].Type)
	require.Len(t, out.Warnings, 2)
	assert.Equal(t, result.TypeIgnoredConnection, out.Warnings[0].Type)
	assert.Equal(t, `App\User -> App`, out.Warnings[0].Subject)
	assert.Equal(t, `App\User -> Named`, out.Warnings[1].Subject)
}

func TestReadUnknownSignatureIsIgnored(t *testing.T) {
	src := doc(
		addNode(classNode("ClassNode0", "A", "")),
		addNode(classNode("ClassNode1", "B", "")),
		connect(ref("ClassNode0"), ref("ClassNode1"), "endArrowHead", "HALF_V"),
		connect(ref("ClassNode0"), ref("ClassNode1"), "endArrowHead", "BLACK_TRIANGLE"),
		connect(ref("ClassNode0"), ref("ClassNode1"), "endArrowHead", "V", "lineStyle", "DOTTED"),
	)
	out := read(t, src)

	a, _ := out.Model.Class("A")
	assert.Nil(t, a.Extends)
	assert.Empty(t, a.Relations)
	assert.Empty(t, out.Errors)
	assert.Empty(t, out.Warnings)
}

func TestReadSyntheticIDs(t *testing.T) {
	src := doc(
		addNode(`<object class="`+violet+`ClassNode">`+text("name", "A")+`</object>`),
		addNode(`<object class="`+violet+`ClassNode">`+text("name", "B")+`</object>`),
	)
	out := read(t, src)
	require.Len(t, out.Model.Types, 2)
	assert.NotEqual(t, out.Model.Types[0].Meta().ID, out.Model.Types[1].Meta().ID)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
	}{
		{"not xml", "<java><object>", Options{}},
		{"empty", "", Options{}},
		{"wrong root", `<beans><object class="` + violet + `ClassDiagramGraph"/></beans>`, Options{}},
		{"missing graph", `<java><void/></java>`, Options{}},
		{"graph of wrong kind", `<java><object class="` + violet + `SequenceDiagramGraph"/></java>`, Options{}},
		{"non-object node", doc(`<void method="addNode"><string>x</string></void>`), Options{}},
		{"unknown node class", doc(addNode(`<object class="` + violet + `NoteNode" id="NoteNode0"/>`)), Options{}},
		{"unresolved idref", doc(
			addNode(classNode("ClassNode0", "A", "")),
			connect(ref("ClassNode0"), ref("ClassNode9"), "endArrowHead", "TRIANGLE"),
		), Options{}},
		{"one endpoint", doc(
			addNode(classNode("ClassNode0", "A", "")),
			connect(ref("ClassNode0"), "", "endArrowHead", "TRIANGLE"),
		), Options{}},
		{"duplicate name", doc(
			addNode(classNode("ClassNode0", "A", "")),
			addNode(classNode("ClassNode1", "A", "")),
		), Options{}},
		{"empty type name", doc(addNode(classNode("ClassNode0", "---", ""))), Options{}},
		{"inheritance cycle", doc(
			addNode(classNode("ClassNode0", "A", "")),
			addNode(classNode("ClassNode1", "B", "")),
			connect(ref("ClassNode0"), ref("ClassNode1"), "endArrowHead", "TRIANGLE"),
			connect(ref("ClassNode1"), ref("ClassNode0"), "endArrowHead", "TRIANGLE"),
		), Options{}},
		{"interface extension cycle", doc(
			addNode(interfaceNode("InterfaceNode0", "A")),
			addNode(interfaceNode("InterfaceNode1", "B")),
			connect(ref("InterfaceNode0"), ref("InterfaceNode1"), "endArrowHead", "TRIANGLE"),
			connect(ref("InterfaceNode1"), ref("InterfaceNode0"), "endArrowHead", "TRIANGLE"),
		), Options{}},
		{"package cycle", doc(
			addNode(packageNode("PackageNode0", "Outer", packageNode("PackageNode1", "Inner", ref("PackageNode0")))),
		), Options{}},
		{"id reused across kinds", doc(
			addNode(classNode("Node0", "A", "")),
			addNode(interfaceNode("Node0", "B")),
		), Options{}},
		{"too large", doc(), Options{MaxDocumentBytes: 16}},
		{"too deep", doc(addNode(packageNode("PackageNode0", "A", packageNode("PackageNode1", "B")))), Options{MaxDepth: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Read([]byte(tt.src), tt.opts)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, result.IsMalformed(err), "%v", err)
		})
	}
}
