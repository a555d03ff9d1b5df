package export

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/violet-to-doctrine/parser/internal/diagram"
)

// Block types; each is also the root of references to its blocks.
const (
	blockPackage   = "package"
	blockClass     = "class"
	blockInterface = "interface"
)

// SanitizeName converts a fully-qualified name to a block label usable in
// references (e.g. Blog\Model -> Blog_Model).
func SanitizeName(fullName string) string {
	return strings.ReplaceAll(fullName, diagram.NamespaceSeparator, "_")
}

// refTraversal builds the reference to a block, e.g. class.Blog_Model_Article.
func refTraversal(blockType, fullName string) hcl.Traversal {
	return hcl.Traversal{
		hcl.TraverseRoot{Name: blockType},
		hcl.TraverseAttr{Name: SanitizeName(fullName)},
	}
}

// setRef sets a reference attribute; empty names are skipped.
func setRef(body *hclwrite.Body, name, blockType, fullName string) {
	if fullName != "" {
		body.SetAttributeTraversal(name, refTraversal(blockType, fullName))
	}
}

// setRefList sets a tuple of references; empty lists are skipped.
func setRefList(body *hclwrite.Body, name, blockType string, fullNames []string) {
	if len(fullNames) == 0 {
		return
	}
	elems := make([]hclwrite.Tokens, len(fullNames))
	for i, n := range fullNames {
		elems[i] = hclwrite.TokensForTraversal(refTraversal(blockType, n))
	}
	body.SetAttributeRaw(name, hclwrite.TokensForTuple(elems))
}

// SetAttributeStr sets a string attribute on a block body.
func SetAttributeStr(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// SetAttributeBool sets a bool attribute.
func SetAttributeBool(body *hclwrite.Body, name string, value bool) {
	body.SetAttributeValue(name, cty.BoolVal(value))
}

// SetAttributeList sets a list(string) attribute (e.g. used root packages).
func SetAttributeList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}
