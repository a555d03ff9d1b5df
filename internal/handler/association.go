package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/registry"
)

func init() {
	registry.Default.Register("v-", passive{kind: diagram.ConnectionAssociation})
	registry.Default.Register("v-dotted", passive{kind: diagram.ConnectionDependency})
}
