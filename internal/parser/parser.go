package parser

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	_ "github.com/violet-to-doctrine/parser/internal/handler" // register connection handlers
	"github.com/violet-to-doctrine/parser/internal/lexer"
	"github.com/violet-to-doctrine/parser/internal/logger"
	"github.com/violet-to-doctrine/parser/internal/reader"
	"github.com/violet-to-doctrine/parser/internal/registry"
	"github.com/violet-to-doctrine/parser/internal/relation"
	"github.com/violet-to-doctrine/parser/internal/result"
	"github.com/violet-to-doctrine/parser/internal/typeref"
)

// DiagramParser reads class diagrams into resolved models. It holds no
// per-diagram state and is safe for concurrent use.
type DiagramParser struct {
	opts Options
	reg  *registry.Registry
}

// New returns a new parser with the given options.
func New(opts Options) *DiagramParser {
	if opts.Logger == nil {
		opts.Logger = logger.Default
	}
	return &DiagramParser{
		opts: opts,
		reg:  registry.Default,
	}
}

// Parse reads the diagram, lexes member text, resolves type references and
// infers relations. A malformed diagram returns a *result.DiagramError and
// no result; otherwise the model is returned with every non-fatal fault.
func (p *DiagramParser) Parse(raw []byte) (*result.ParseResult, error) {
	// 1. Read the object graph and classify connections
	doc, err := reader.Read(raw, reader.Options{
		MaxDocumentBytes: p.opts.MaxDocumentBytes,
		MaxDepth:         p.opts.MaxDepth,
		Logger:           p.opts.Logger,
		Registry:         p.reg,
	})
	if err != nil {
		return nil, err
	}
	m := doc.Model

	// 2. Lex member text
	for _, t := range m.Types {
		lexMembers(t)
	}

	// 3. Bind type names to diagram types
	typeref.ResolveAll(m)

	// 4. Infer associations
	out := &result.ParseResult{
		Model:    m,
		Errors:   append(doc.Errors, relation.Resolve(m)...),
		Warnings: doc.Warnings,
	}
	out.Success = len(out.Errors) == 0

	p.opts.Logger.Debug("diagram resolved",
		"packages", len(m.Packages), "types", len(m.Types),
		"errors", len(out.Errors), "warnings", len(out.Warnings))
	return out, nil
}

func lexMembers(t diagram.Type) {
	switch t := t.(type) {
	case *diagram.Class:
		for _, prop := range lexer.ParseProperties(t.PropertiesText) {
			t.AddProperty(prop)
		}
		for _, m := range lexer.ParseMethods(t.MethodsText) {
			t.AddMethod(m)
		}
	case *diagram.Interface:
		for _, m := range lexer.ParseMethods(t.MethodsText) {
			t.AddMethod(m)
		}
	}
}
