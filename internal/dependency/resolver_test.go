package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/violet-to-doctrine/parser/internal/diagram"
)

func TestCheckEmpty(t *testing.T) {
	assert.NoError(t, Check(nil))
}

func TestCheckAcyclicHierarchy(t *testing.T) {
	named := diagram.NewInterface("Named")
	principal := diagram.NewInterface("Principal")
	principal.Extends = []*diagram.Interface{named}
	identity := diagram.NewClass("Identity")
	user := diagram.NewClass("User")
	user.Extends = identity
	user.Implements = []*diagram.Interface{principal, principal}
	admin := diagram.NewClass("Admin")
	admin.Extends = user

	assert.NoError(t, Check([]diagram.Type{admin, user, principal, identity, named}))
}

func TestCheckIgnoresUnknownSupertypes(t *testing.T) {
	base := diagram.NewClass("Base")
	child := diagram.NewClass("Child")
	child.Extends = base

	assert.NoError(t, Check([]diagram.Type{child}))
}

func TestCheckCycle(t *testing.T) {
	a := diagram.NewInterface("A")
	b := diagram.NewInterface("B")
	a.Extends = []*diagram.Interface{b}
	b.Extends = []*diagram.Interface{a}
	free := diagram.NewClass("Free")

	err := Check([]diagram.Type{free, a, b})
	assert.ErrorIs(t, err, ErrCycle)
	assert.EqualError(t, err, "inheritance cycle detected: A, B")
}

func TestCheckSelfExtension(t *testing.T) {
	c := diagram.NewInterface("C")
	c.Extends = []*diagram.Interface{c}

	assert.ErrorIs(t, Check([]diagram.Type{c}), ErrCycle)
}
