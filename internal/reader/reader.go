// Package reader turns a serialized class diagram into a diagram model.
//
// The input is the XML object graph written by the Violet UML editor: a
// <java> root holding one ClassDiagramGraph object whose addNode and
// connect calls describe packages, classes, interfaces and the edges
// between them. Objects are defined once with an id and referenced later
// with an idref; the reader keeps an explicit identity table for that.
package reader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/violet-to-doctrine/parser/internal/dependency"
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/logger"
	"github.com/violet-to-doctrine/parser/internal/naming"
	"github.com/violet-to-doctrine/parser/internal/registry"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// Node kinds, the trailing segment of an object's class attribute.
const (
	kindGraph     = "ClassDiagramGraph"
	kindPackage   = "PackageNode"
	kindInterface = "InterfaceNode"
	kindClass     = "ClassNode"
)

// Options bounds and instruments one read.
type Options struct {
	// MaxDocumentBytes rejects larger inputs outright (0 = no limit).
	MaxDocumentBytes int64
	// MaxDepth is the deepest element nesting accepted (0 = DefaultMaxDepth).
	MaxDepth int
	Logger   *slog.Logger
	// Registry classifies connections (nil = registry.Default).
	Registry *registry.Registry
}

// DefaultMaxDepth bounds element nesting when Options.MaxDepth is unset.
const DefaultMaxDepth = 64

// Output is a read diagram: the model with member text still unlexed, and
// the non-fatal faults raised while classifying connections.
type Output struct {
	Model    *diagram.Model
	Errors   []result.Error
	Warnings []result.Warning
}

// edge is a connection whose endpoints are known but whose meaning is
// applied only once every node has been read.
type edge struct {
	node     string
	from, to any
	style    diagram.Style
}

type reader struct {
	opts     Options
	objects  map[string]any
	packages []*diagram.Package
	types    []diagram.Type
	edges    []edge
	anon     int
}

// Read parses raw into a model. Any structural fault is a
// *result.DiagramError and no partial model is returned.
func Read(raw []byte, opts Options) (*Output, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default
	}
	if opts.MaxDocumentBytes > 0 && int64(len(raw)) > opts.MaxDocumentBytes {
		return nil, result.Malformed("", "document is %d bytes, limit is %d", len(raw), opts.MaxDocumentBytes)
	}

	root, err := decode(raw, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	if root.name != "java" {
		return nil, result.Malformed(root.name, "root element must be 'java'")
	}
	graph := root.first()
	if graph == nil || graph.name != "object" || graph.kind() != kindGraph {
		return nil, result.Malformed("", "serialized ClassDiagramGraph not found")
	}

	r := &reader{opts: opts, objects: make(map[string]any)}
	if err := r.graph(graph); err != nil {
		return nil, err
	}
	out := &Output{}
	r.connect(out)

	if errs := diagram.Validate(r.packages, r.types); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, result.MalformedCause(errs[0].Subject, "invalid model", errors.Join(joined...))
	}
	if err := dependency.Check(r.types); err != nil {
		return nil, result.MalformedCause("", "invalid model", err)
	}
	out.Model = diagram.NewModel(r.packages, r.types)
	return out, nil
}

func (r *reader) graph(el *element) error {
	for _, call := range el.children {
		switch call.attr("method") {
		case "addNode":
			child := call.first()
			if child == nil {
				return result.Malformed("", "addNode without a node")
			}
			if _, err := r.object(child); err != nil {
				return err
			}
		case "connect":
			if err := r.edge(call); err != nil {
				return err
			}
		}
	}
	return nil
}

// object returns the package or type el defines or references.
func (r *reader) object(el *element) (any, error) {
	if el.name != "object" {
		return nil, result.Malformed(el.name, "expected a serialized object, got <%s>", el.name)
	}
	if ref := el.attr("idref"); ref != "" {
		obj, ok := r.objects[ref]
		if !ok {
			return nil, result.Malformed(ref, "reference to an undefined object")
		}
		return obj, nil
	}
	switch kind := el.kind(); kind {
	case kindPackage:
		return r.pkg(el)
	case kindInterface:
		return r.iface(el)
	case kindClass:
		return r.class(el)
	default:
		return nil, result.Malformed(el.attr("id"), "unknown node class %q", el.attr("class"))
	}
}

func (r *reader) id(el *element) string {
	if id := el.attr("id"); id != "" {
		return id
	}
	r.anon++
	return fmt.Sprintf("#%d", r.anon)
}

func (r *reader) pkg(el *element) (*diagram.Package, error) {
	id := r.id(el)
	var p *diagram.Package
	switch obj := r.objects[id].(type) {
	case nil:
		p = &diagram.Package{ID: id}
		r.objects[id] = p
		r.packages = append(r.packages, p)
	case *diagram.Package:
		p = obj
	default:
		return nil, result.Malformed(id, "id is already used by a %s", describe(obj))
	}

	for _, call := range el.children {
		if call.attr("method") == "addChild" {
			node := call.first()
			if node == nil {
				return nil, result.Malformed(id, "addChild without a node")
			}
			child, err := r.object(node)
			if err != nil {
				return nil, err
			}
			switch c := child.(type) {
			case *diagram.Package:
				if err := p.AddPackage(c); err != nil {
					return nil, result.MalformedCause(c.ID, "cannot nest package", err)
				}
			case diagram.Type:
				p.AddType(c)
			}
			continue
		}
		if call.attr("property") == "name" {
			p.Name = naming.Sanitize(call.value())
		}
	}
	return p, nil
}

func (r *reader) iface(el *element) (*diagram.Interface, error) {
	id := r.id(el)
	var i *diagram.Interface
	switch obj := r.objects[id].(type) {
	case nil:
		i = diagram.NewInterface("")
		i.ID = id
		r.objects[id] = i
		r.types = append(r.types, i)
	case *diagram.Interface:
		i = obj
	default:
		return nil, result.Malformed(id, "id is already used by a %s", describe(obj))
	}

	for _, field := range el.children {
		switch field.attr("property") {
		case "name":
			i.Name = naming.Sanitize(field.value())
		case "methods":
			i.MethodsText = field.value()
		}
	}
	return i, nil
}

func (r *reader) class(el *element) (*diagram.Class, error) {
	id := r.id(el)
	var c *diagram.Class
	switch obj := r.objects[id].(type) {
	case nil:
		c = diagram.NewClass("")
		c.ID = id
		r.objects[id] = c
		r.types = append(r.types, c)
	case *diagram.Class:
		c = obj
	default:
		return nil, result.Malformed(id, "id is already used by a %s", describe(obj))
	}

	for _, field := range el.children {
		switch field.attr("property") {
		case "name":
			c.Name = naming.Sanitize(field.value())
		case "attributes":
			c.PropertiesText = field.value()
		case "methods":
			c.MethodsText = field.value()
		}
	}
	return c, nil
}

// edge records a connect call. The first child is the edge object holding
// the style; the remaining objects are the two endpoints.
func (r *reader) edge(call *element) error {
	edgeObj := call.first()
	if edgeObj == nil {
		return result.Malformed("", "connect without an edge")
	}
	e := edge{node: edgeObj.attr("id"), style: style(edgeObj)}

	var ends []any
	for _, child := range call.children[1:] {
		if child.name != "object" {
			continue
		}
		obj, err := r.object(child)
		if err != nil {
			return err
		}
		ends = append(ends, obj)
	}
	if len(ends) != 2 {
		return result.Malformed(e.node, "connection has %d endpoints, want 2", len(ends))
	}
	e.from, e.to = ends[0], ends[1]
	r.edges = append(r.edges, e)
	return nil
}

func style(edgeObj *element) diagram.Style {
	var s diagram.Style
	for _, prop := range edgeObj.children {
		enum := ""
		if v := prop.first(); v != nil {
			enum = diagram.NormalizeStyleValue(v.attr("field"))
		}
		switch prop.attr("property") {
		case "startArrowHead":
			s.StartArrowHead = enum
		case "endArrowHead":
			s.EndArrowHead = enum
		case "lineStyle":
			s.LineStyle = enum
		case "bentStyle":
			s.BentStyle = enum
		case "startLabel":
			s.StartLabel = prop.value()
		case "middleLabel":
			s.MiddleLabel = prop.value()
		case "endLabel":
			s.EndLabel = prop.value()
		}
	}
	return s
}

// connect applies every recorded edge in document order.
func (r *reader) connect(out *Output) {
	log := r.opts.Logger
	for _, e := range r.edges {
		signature := e.style.Signature()
		h, ok := r.opts.Registry.Get(signature)
		if !ok {
			log.Debug("connection ignored", "signature", signature, "edge", e.node)
			continue
		}
		from, fromOK := e.from.(diagram.Type)
		to, toOK := e.to.(diagram.Type)
		if !fromOK || !toOK {
			out.Warnings = append(out.Warnings, result.IgnoredConnection(
				name(e.from)+" -> "+name(e.to),
				string(h.Kind())+" touching a package is not supported"))
			continue
		}
		conn := &diagram.Connection{From: from, To: to, Style: e.style}
		from, to = conn.Oriented()
		errs, warns := h.Connect(from, to)
		log.Debug("connection classified",
			"kind", h.Kind(), "from", from.FullName(), "to", to.FullName(),
			"signature", signature)
		out.Errors = append(out.Errors, errs...)
		out.Warnings = append(out.Warnings, warns...)
	}
}

func name(obj any) string {
	switch o := obj.(type) {
	case *diagram.Package:
		return o.FullName()
	case diagram.Type:
		return o.FullName()
	}
	return "?"
}

func describe(obj any) string {
	switch o := obj.(type) {
	case *diagram.Package:
		return "package"
	case diagram.Type:
		return o.Kind().String()
	}
	return fmt.Sprintf("%T", obj)
}
