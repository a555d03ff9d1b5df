// Package lexer reads the one-member-per-line text blocks diagrams attach
// to classes and interfaces:
//
//	[+|#|-] name [ "(" args ")" ] [ ":" type [ "<" subtype ">" ] ] [ "=" default ]
//
// The grammar is lenient: anything it does not understand is skipped and
// no line ever fails.
package lexer

import (
	"strings"

	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// scanner walks a single line. It holds no state beyond the line.
type scanner struct {
	line string
	pos  int
}

func (s *scanner) done() bool { return s.pos >= len(s.line) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.line[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.done() && (s.line[s.pos] == ' ' || s.line[s.pos] == '\t') {
		s.pos++
	}
}

// visibility consumes a leading visibility sigil.
func (s *scanner) visibility() (diagram.Visibility, bool) {
	var v diagram.Visibility
	switch s.peek() {
	case '+':
		v = diagram.Public
	case '#':
		v = diagram.Protected
	case '-':
		v = diagram.Private
	default:
		return "", false
	}
	s.pos++
	return v, true
}

func isIdentStart(c byte, digits bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '\\', c >= 0x7f:
		return true
	case c >= '0' && c <= '9':
		return digits
	}
	return false
}

func isIdentPart(c byte) bool {
	return isIdentStart(c, true) || c == '-'
}

// identifier consumes a name, allowing namespaced names with backslashes.
// Method names may not start with a digit.
func (s *scanner) identifier(leadingDigit bool) string {
	if s.done() || !isIdentStart(s.peek(), leadingDigit) {
		return ""
	}
	start := s.pos
	for !s.done() && isIdentPart(s.line[s.pos]) {
		s.pos++
	}
	return s.line[start:s.pos]
}

// bracketed consumes "<...>" and returns the trimmed content. An
// unterminated bracket takes the rest of the line.
func (s *scanner) bracketed() string {
	s.pos++ // <
	end := strings.IndexByte(s.line[s.pos:], '>')
	if end < 0 {
		v := s.line[s.pos:]
		s.pos = len(s.line)
		return strings.TrimSpace(v)
	}
	v := s.line[s.pos : s.pos+end]
	s.pos += end + 1
	return strings.TrimSpace(v)
}

// typeName consumes ":" followed by a type identifier.
func (s *scanner) typeName() string {
	s.pos++ // :
	s.skipSpace()
	return s.identifier(true)
}

func (s *scanner) rest() string {
	v := s.line[s.pos:]
	s.pos = len(s.line)
	return v
}

// lines splits a text block on any run of line breaks.
func lines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
