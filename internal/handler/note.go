package handler

import (
	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/registry"
)

func init() {
	registry.Default.Register("-dotted", passive{kind: diagram.ConnectionNote})
}
