package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/violet-to-doctrine/parser/internal/result"
)

func TestPrintFaults(t *testing.T) {
	res := &result.ParseResult{
		Errors: []result.Error{
			result.UnresolvableRelation("Tag -> Session", "no property of Tag or Session carries the aggregation"),
		},
		Warnings: []result.Warning{
			result.IgnoredConnection("Identity -> Named", "generalization between a class and an interface is ignored"),
		},
	}
	var buf bytes.Buffer
	printFaults(&buf, res)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "ERROR [Tag -> Session] no property of Tag or Session carries the aggregation", string(lines[0]))
		assert.Contains(t, string(lines[1]), "suggestion: ")
		assert.Equal(t, "WARN [Identity -> Named] generalization between a class and an interface is ignored", string(lines[2]))
	}
}
