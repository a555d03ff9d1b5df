package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/lexer"
	"github.com/violet-to-doctrine/parser/internal/relation"
	"github.com/violet-to-doctrine/parser/internal/typeref"
)

// relationsModel builds the numbered-classes diagram covering every
// association shape.
func relationsModel(t *testing.T) *diagram.Model {
	t.Helper()
	props := map[string]string{
		"One":      "- name : string\n- twos : Collection<Two>",
		"Two":      "- name : string",
		"Three":    "- name : string\n- fours : Collection<Four>",
		"Four":     "- name : string\n- three : Three",
		"Five":     "- name : string\n- six : Six",
		"Six":      "- name : string",
		"Seven":    "- name : string\n- eight : Eight",
		"Eight":    "- name : string\n- seven : Seven",
		"Nine":     "- name : string\n- children : Collection<Nine>\n- parent : Nine",
		"Ten":      "- name : string\n- elevens : Collection<Eleven>",
		"Eleven":   "- name : string\n- tens : Collection<Ten>",
		"Twelve":   "- name : string\n- twelve : Twelve",
		"Thirteen": "- name : string",
		"Fourteen": "- name : string\n- thirteen : Thirteen",
		"Fiveteen": "- name : string\n- sixteens : Collection<Sixteen>",
		"Sixteen":  "- name : string",
	}
	classes := make(map[string]*diagram.Class)
	var types []diagram.Type
	for name, text := range props {
		c := diagram.NewClass(name)
		for _, p := range lexer.ParseProperties(text) {
			c.AddProperty(p)
		}
		classes[name] = c
		types = append(types, c)
	}
	m := diagram.NewModel(nil, types)
	typeref.ResolveAll(m)

	edges := []struct {
		kind        diagram.RelationKind
		whole, part string
	}{
		{diagram.Aggregation, "One", "Two"},
		{diagram.Composition, "Three", "Four"},
		{diagram.Composition, "Five", "Six"},
		{diagram.Composition, "Seven", "Eight"},
		{diagram.Aggregation, "Nine", "Nine"},
		{diagram.Aggregation, "Ten", "Eleven"},
		{diagram.Composition, "Twelve", "Twelve"},
		{diagram.Aggregation, "Fourteen", "Thirteen"},
		{diagram.Composition, "Fiveteen", "Sixteen"},
	}
	for _, e := range edges {
		classes[e.whole].AddRelation(e.kind, classes[e.part])
	}
	require.Empty(t, relation.Resolve(m))
	return m
}

func annotations(t *testing.T, m *diagram.Model, class, prop string) []string {
	t.Helper()
	c, ok := m.Class(class)
	require.True(t, ok, class)
	p, ok := c.Property(prop)
	require.True(t, ok, "%s::%s", class, prop)
	return Describe(p).Annotations()
}

func TestAnnotations(t *testing.T) {
	m := relationsModel(t)

	tests := []struct {
		class, prop string
		want        []string
	}{
		{"Five", "name", []string{`@var string`, `@Column(type="string")`}},
		{"Five", "six", []string{
			`@var Six`,
			`@OneToOne(targetEntity="Six")`,
			`@JoinColumn(name="six_id", referencedColumnName="id")`,
		}},
		{"Seven", "eight", []string{
			`@var Eight`,
			`@OneToOne(targetEntity="Eight", mappedBy="seven")`,
		}},
		{"Eight", "seven", []string{
			`@var Seven`,
			`@OneToOne(targetEntity="Seven", inversedBy="eight")`,
			`@JoinColumn(name="seven_id", referencedColumnName="id")`,
		}},
		{"Twelve", "twelve", []string{
			`@var Twelve`,
			`@OneToOne(targetEntity="Twelve")`,
			`@JoinColumn(name="twelve_id", referencedColumnName="id")`,
		}},
		{"One", "twos", []string{
			`@var Collection`,
			`@ManyToMany(targetEntity="Two")`,
			`@JoinTable(name="ones_twos", ` +
				`joinColumns={@JoinColumn(name="two_id", referencedColumnName="id"), unique=TRUE}, ` +
				`inverseJoinColumns={@JoinColumn(name="one_id", referencedColumnName="id")})`,
		}},
		{"Fourteen", "thirteen", []string{
			`@var Thirteen`,
			`@ManyToOne(targetEntity="Thirteen")`,
			`@JoinColumn(name="thirteen_id", referencedColumnName="id")`,
		}},
		{"Four", "three", []string{
			`@var Three`,
			`@ManyToOne(targetEntity="Three", inversedBy="fours")`,
			`@JoinColumn(name="three_id", referencedColumnName="id")`,
		}},
		{"Three", "fours", []string{
			`@var Collection`,
			`@OneToMany(targetEntity="Four", mappedBy="three")`,
		}},
		{"Nine", "children", []string{
			`@var Collection`,
			`@OneToMany(targetEntity="Nine", mappedBy="parent")`,
		}},
		{"Nine", "parent", []string{
			`@var Nine`,
			`@ManyToOne(targetEntity="Nine", inversedBy="children")`,
			`@JoinColumn(name="parent_id", referencedColumnName="id")`,
		}},
		{"Fiveteen", "sixteens", []string{
			`@var Collection`,
			`@ManyToMany(targetEntity="Sixteen")`,
			`@JoinTable(name="fiveteens_sixteens", ` +
				`joinColumns={@JoinColumn(name="sixteen_id", referencedColumnName="id")}, ` +
				`inverseJoinColumns={@JoinColumn(name="fiveteen_id", referencedColumnName="id")})`,
		}},
		{"Eleven", "tens", []string{
			`@var Collection`,
			`@ManyToMany(targetEntity="Ten", inversedBy="elevens")`,
			`@JoinTable(name="tens_elevens")`,
		}},
		{"Ten", "elevens", []string{
			`@var Collection`,
			`@ManyToMany(targetEntity="Eleven", mappedBy="tens")`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.class+"::"+tt.prop, func(t *testing.T) {
			assert.Equal(t, tt.want, annotations(t, m, tt.class, tt.prop))
		})
	}
}

func TestEveryNamePropertyIsAColumn(t *testing.T) {
	m := relationsModel(t)
	for _, c := range m.Classes() {
		f := Describe(mustProperty(t, c, "name"))
		assert.Equal(t, "string", f.Column, c.Name)
		assert.Nil(t, f.Association, c.Name)
	}
}

func TestDescribeStructured(t *testing.T) {
	m := relationsModel(t)
	one, _ := m.Class("One")
	f := Describe(mustProperty(t, one, "twos"))

	require.NotNil(t, f.Association)
	assert.Equal(t, "ManyToMany", f.Association.Cardinality)
	assert.Nil(t, f.Association.JoinColumn)
	require.NotNil(t, f.Association.JoinTable)
	assert.Equal(t, "ones_twos", f.Association.JoinTable.Name)
	assert.Equal(t, []JoinColumn{{Name: "two_id", ReferencedColumnName: "id", Unique: true}}, f.Association.JoinTable.JoinColumns)
	assert.Equal(t, []JoinColumn{{Name: "one_id", ReferencedColumnName: "id"}}, f.Association.JoinTable.InverseJoinColumns)
}

func TestCollectionColumnUsesSubtype(t *testing.T) {
	c := diagram.NewClass("Post")
	p := diagram.NewProperty("tags")
	p.Type = diagram.Ref(diagram.CollectionTypeName)
	p.Subtype = diagram.Ref("string")
	c.AddProperty(p)

	f := Describe(p)
	assert.Equal(t, "Collection", f.VarType)
	assert.Equal(t, "string", f.Column)
}

func TestTargetEntityAcrossPackages(t *testing.T) {
	app, blog := &diagram.Package{Name: "App"}, &diagram.Package{Name: "Blog"}
	user, post := diagram.NewClass("User"), diagram.NewClass("Post")
	app.AddType(user)
	blog.AddType(post)
	author := diagram.NewProperty("author")
	author.Type = diagram.TypeRef{Name: "User", Type: user}
	post.AddProperty(author)
	post.AddRelation(diagram.Aggregation, user)

	m := diagram.NewModel([]*diagram.Package{app, blog}, []diagram.Type{user, post})
	require.Empty(t, relation.Resolve(m))

	f := Describe(author)
	assert.Equal(t, `App\User`, f.VarType)
	assert.Equal(t, `App\User`, f.Association.TargetEntity)
	assert.Equal(t, []string{
		`@var App\User`,
		`@ManyToOne(targetEntity="App\User")`,
		`@JoinColumn(name="author_id", referencedColumnName="id")`,
	}, f.Annotations())
}

func mustProperty(t *testing.T, c *diagram.Class, name string) *diagram.Property {
	t.Helper()
	p, ok := c.Property(name)
	require.True(t, ok, "%s::%s", c.Name, name)
	return p
}
