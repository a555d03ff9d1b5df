package lexer

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// ParseMethods lexes a method block into methods, one per line that has a
// name. Methods default to public visibility and the string return type.
func ParseMethods(text string) []*diagram.Method {
	var methods []*diagram.Method
	for _, line := range lines(text) {
		if m := parseMethod(line); m != nil {
			methods = append(methods, m)
		}
	}
	return methods
}

func parseMethod(line string) *diagram.Method {
	s := &scanner{line: line}
	s.skipSpace()
	visibility, hasVisibility := s.visibility()
	s.skipSpace()
	name := s.identifier(false)
	if name == "" {
		return nil
	}

	m := diagram.NewMethod(name)
	if hasVisibility {
		m.Visibility = visibility
	}
	for !s.done() {
		s.skipSpace()
		switch s.peek() {
		case '(':
			s.arguments(m)
		case ':':
			if t := s.typeName(); t != "" {
				m.Returns = diagram.Ref(t)
			}
		case '<':
			if sub := s.bracketed(); sub != "" {
				m.ReturnsSubtype = diagram.Ref(sub)
			}
		default:
			s.pos++
		}
	}
	return m
}

// arguments consumes "(type name type name ...)". Tokens alternate type
// and name; a trailing name without a type is mixed. Commas are ignored.
func (s *scanner) arguments(m *diagram.Method) {
	s.pos++ // (
	var pending string
	for !s.done() && s.peek() != ')' {
		if ident := s.identifier(true); ident != "" {
			if pending == "" {
				pending = ident
				continue
			}
			m.SetArg(ident, diagram.Ref(pending))
			pending = ""
			continue
		}
		s.pos++
	}
	if pending != "" {
		m.SetArg(pending, diagram.Ref(diagram.MixedTypeName))
	}
	if !s.done() {
		s.pos++ // )
	}
}
