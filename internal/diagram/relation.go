package diagram

// RelationShape is the shape of one side of an association before it is
// combined with the other side into a Cardinality. The zero value means unset.
type RelationShape string

const (
	HasOne  RelationShape = "HasOne"
	HasMany RelationShape = "HasMany"
)

// Cardinality is the full shape of an association as seen from one side.
type Cardinality int

const (
	NoCardinality Cardinality = iota
	OneToOne
	OneToMany
	ManyToOne
	ManyToMany
)

func (c Cardinality) String() string {
	switch c {
	case OneToOne:
		return "OneToOne"
	case OneToMany:
		return "OneToMany"
	case ManyToOne:
		return "ManyToOne"
	case ManyToMany:
		return "ManyToMany"
	}
	return ""
}

type sideState uint8

const (
	sideUnresolved sideState = iota
	sideAbsent
	sidePresent
)

// sideCache memoises the other side of a relation. sideAbsent is a
// computed result and is never recomputed.
type sideCache struct {
	state sideState
	prop  *Property
}

// IsCollection reports whether p is a collection-shaped reference.
func (p *Property) IsCollection() bool {
	return p.Relation != nil && p.RelationType == HasMany
}

// OtherSide returns the property on the related class that carries the
// same association back to p's owner, or nil for a one-directional link.
// The answer is cached on first call; call it only once relations are set.
func (p *Property) OtherSide() *Property {
	switch p.otherSide.state {
	case sidePresent:
		return p.otherSide.prop
	case sideAbsent:
		return nil
	}
	if other := p.findOtherSide(); other != nil {
		p.otherSide = sideCache{state: sidePresent, prop: other}
		return other
	}
	p.otherSide = sideCache{state: sideAbsent}
	return nil
}

func (p *Property) findOtherSide() *Property {
	if p.Relation == nil || p.Owner == nil {
		return nil
	}
	seen := make(map[*Class]bool)
	for class := p.Relation; class != nil && !seen[class]; class = class.Extends {
		seen[class] = true
		for _, candidate := range class.Properties {
			if candidate == p || !isOrExtends(candidate.Relation, p.Owner) {
				continue
			}
			if candidate.Type.Is(candidate.Relation) || candidate.Subtype.Is(candidate.Relation) {
				return candidate
			}
		}
	}
	return nil
}

// isOrExtends reports whether c is ancestor or one of its subclasses.
func isOrExtends(c, ancestor *Class) bool {
	if c == nil {
		return false
	}
	if c == ancestor {
		return true
	}
	chain, _ := c.Ancestors()
	for _, super := range chain {
		if super == ancestor {
			return true
		}
	}
	return false
}

// IsUnidirectional reports whether only p carries its association.
func (p *Property) IsUnidirectional() bool {
	return p.OtherSide() == nil
}

// Cardinality derives the association shape from both sides, or from the
// inferred OtherSideRelationType when the link is one-directional.
func (p *Property) Cardinality() Cardinality {
	if p.Relation == nil {
		return NoCardinality
	}
	other := p.OtherSide()
	if other == nil {
		if p.RelationType == HasOne {
			if p.OtherSideRelationType == HasMany {
				return ManyToOne
			}
			return OneToOne
		}
		// a one-directional has-many cannot be a single foreign key on the
		// other side, so it always needs a join table
		return ManyToMany
	}
	if p.RelationType == HasOne {
		if other.RelationType == HasOne {
			return OneToOne
		}
		return ManyToOne
	}
	if other.RelationType == HasOne {
		return OneToMany
	}
	return ManyToMany
}

// IsOwningSide reports whether p carries the persisted mapping of its
// association. When neither side is forced, the side whose owner sorts
// first by fully-qualified name owns it; a self-referencing pair falls
// back to the property name.
func (p *Property) IsOwningSide() bool {
	if p.Relation == nil {
		return false
	}
	other := p.OtherSide()
	if other == nil {
		return true
	}
	switch p.Cardinality() {
	case ManyToOne:
		return true
	case OneToMany:
		return false
	}
	mine, theirs := p.Owner.FullName(), other.Owner.FullName()
	if mine != theirs {
		return mine < theirs
	}
	return p.Name < other.Name
}

func (p *Property) IsOneToManyUnidirectional() bool {
	return p.IsCollection() &&
		p.OtherSideRelationType == HasOne &&
		p.IsUnidirectional() &&
		p.IsOwningSide()
}

func (p *Property) IsManyToManyUnidirectional() bool {
	return p.IsCollection() &&
		p.OtherSideRelationType == "" &&
		p.IsUnidirectional()
}

func (p *Property) IsManyToManyBidirectional() bool {
	if !p.IsCollection() {
		return false
	}
	other := p.OtherSide()
	return other != nil && other.IsCollection()
}
