package reader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/violet-to-doctrine/parser/internal/result"
)

// element is one node of the decoded document. Only element children are
// kept in children; character data is concatenated into text.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     []byte
}

func (e *element) attr(name string) string {
	return e.attrs[name]
}

// first returns the first element child, or nil.
func (e *element) first() *element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// kind returns the trailing segment of the class attribute,
// e.g. "ClassNode" for "com.horstmann.violet.ClassNode".
func (e *element) kind() string {
	class := e.attr("class")
	if i := strings.LastIndexByte(class, '.'); i >= 0 {
		return class[i+1:]
	}
	return class
}

// value reads a field value: the text of the first nested element,
// recursing through wrappers such as <void property="text">.
func (e *element) value() string {
	for el := e; ; el = el.first() {
		if el.first() == nil {
			return string(el.text)
		}
	}
}

// decode builds the element tree, refusing documents nested deeper than
// maxDepth before the whole input is consumed.
func decode(raw []byte, maxDepth int) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	var (
		root  *element
		stack []*element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, result.MalformedCause("", "invalid XML", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= maxDepth {
				return nil, result.Malformed(t.Name.Local, "document nested deeper than %d elements", maxDepth)
			}
			el := &element{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, result.Malformed(t.Name.Local, "document has more than one root element")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}
	if root == nil {
		return nil, result.Malformed("", "document is empty")
	}
	return root, nil
}
