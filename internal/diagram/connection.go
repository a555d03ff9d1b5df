package diagram

import "strings"

// ConnectionKind is the meaning a connection style maps to.
type ConnectionKind string

const (
	ConnectionNote           ConnectionKind = "note"
	ConnectionGeneralization ConnectionKind = "generalization"
	ConnectionRealization    ConnectionKind = "realization"
	ConnectionAssociation    ConnectionKind = "association"
	ConnectionDependency     ConnectionKind = "dependency"
	ConnectionAggregation    ConnectionKind = "aggregation"
	ConnectionComposition    ConnectionKind = "composition"
)

// Style holds the edge attributes that select a connection's meaning.
// Arrow heads and line style are lowercase; "none" and "solid" are stored
// as empty strings.
type Style struct {
	StartArrowHead string
	EndArrowHead   string
	LineStyle      string
	BentStyle      string
	StartLabel     string
	MiddleLabel    string
	EndLabel       string
}

// Signature is the classification key: both arrow heads followed by the
// line style, e.g. "diamond-" or "triangle-dotted".
func (s Style) Signature() string {
	return s.StartArrowHead + s.EndArrowHead + "-" + s.LineStyle
}

// NormalizeStyleValue lowercases an enum value and maps defaults to "".
func NormalizeStyleValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "none", "solid":
		return ""
	}
	return v
}

// Connection is a raw edge between two diagram types. It only lives while
// the diagram is read.
type Connection struct {
	From  Type
	To    Type
	Style Style
}

// Oriented returns the endpoints with From being the side the meaning
// applies to: a start arrow head reverses the edge.
func (c *Connection) Oriented() (Type, Type) {
	if c.Style.StartArrowHead != "" {
		return c.To, c.From
	}
	return c.From, c.To
}

func (c *Connection) String() string {
	from, to := "?", "?"
	if c.From != nil {
		from = c.From.FullName()
	}
	if c.To != nil {
		to = c.To.FullName()
	}
	return from + " -> " + to
}
