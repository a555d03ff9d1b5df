package registry

import (
	"sort"
	"sync"

	"github.com/violet-to-doctrine/parser/internal/diagram"
	"github.com/violet-to-doctrine/parser/internal/result"
)

// ConnectionHandler applies the meaning of one connection style to the
// types it joins.
type ConnectionHandler interface {
	Kind() diagram.ConnectionKind
	// Connect receives the endpoints already oriented: from is the side the
	// meaning applies to (the subclass, the implementer, the whole).
	Connect(from, to diagram.Type) ([]result.Error, []result.Warning)
}

// Default is the global classification table.
var Default = New()

// Registry maps style signatures to connection handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]ConnectionHandler
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]ConnectionHandler)}
}

// Register binds a style signature (see diagram.Style.Signature) to h.
func (r *Registry) Register(signature string, h ConnectionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[signature] = h
}

// Get returns the handler for the signature, or nil and false.
func (r *Registry) Get(signature string) (ConnectionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[signature]
	return h, ok
}

// Classify returns the handler for the connection's style.
func (r *Registry) Classify(c *diagram.Connection) (ConnectionHandler, bool) {
	return r.Get(c.Style.Signature())
}

// ListSignatures returns all registered signatures, sorted.
func (r *Registry) ListSignatures() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	signatures := make([]string, 0, len(r.handlers))
	for s := range r.handlers {
		signatures = append(signatures, s)
	}
	sort.Strings(signatures)
	return signatures
}
