package lexer

import (
	"strings"

	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// ParseProperties lexes a property block into properties, one per line
// that has a name. Properties default to private visibility and the
// string type.
func ParseProperties(text string) []*diagram.Property {
	var props []*diagram.Property
	for _, line := range lines(text) {
		if p := parseProperty(line); p != nil {
			props = append(props, p)
		}
	}
	return props
}

func parseProperty(line string) *diagram.Property {
	s := &scanner{line: line}
	s.skipSpace()
	visibility, hasVisibility := s.visibility()
	s.skipSpace()
	name := s.identifier(true)
	if name == "" {
		return nil
	}

	p := diagram.NewProperty(name)
	if hasVisibility {
		p.Visibility = visibility
	}
	for !s.done() {
		s.skipSpace()
		switch s.peek() {
		case ':':
			if t := s.typeName(); t != "" {
				p.Type = diagram.Ref(t)
			}
		case '<':
			if sub := s.bracketed(); sub != "" {
				p.Subtype = diagram.Ref(sub)
			}
		case '=':
			s.pos++
			p.DefaultValue = strings.TrimSpace(s.rest())
		default:
			s.pos++
		}
	}
	return p
}
