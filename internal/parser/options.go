package parser

import "log/slog"

// Options configures the parser behavior.
type Options struct {
	// MaxDocumentBytes rejects larger diagrams before decoding (0 = no limit).
	MaxDocumentBytes int64
	// MaxDepth is the deepest XML nesting accepted (0 = reader default).
	MaxDepth int
	// Logger receives debug traces of connection classification (nil = logger.Default).
	Logger *slog.Logger
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		MaxDocumentBytes: 8 << 20,
		MaxDepth:         64,
	}
}
