package result

import "github.com/violet-to-doctrine/parser/internal/diagram"

// Fault types reported in Error.Type and Warning.Type.
const (
	TypeIllegalRealization   = "illegal_realization"
	TypeUnresolvableRelation = "unresolvable_relation"
	TypeIgnoredConnection    = "ignored_connection"
)

// Error is a non-fatal fault: the model is still produced, but the
// offending connection contributes nothing to it.
type Error struct {
	Type       string `json:"type" yaml:"type"`
	Severity   string `json:"severity" yaml:"severity"`
	Subject    string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Warning is a connection the classification table accepts but whose
// endpoints cannot carry its meaning.
type Warning struct {
	Type       string `json:"type" yaml:"type"`
	Severity   string `json:"severity" yaml:"severity"`
	Subject    string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// ParseResult is the result of reading and resolving one diagram.
type ParseResult struct {
	Success  bool           `json:"success" yaml:"success"`
	Model    *diagram.Model `json:"-" yaml:"-"`
	Errors   []Error        `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Warning      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// IllegalRealization reports a realization whose implementing side is not a class.
func IllegalRealization(subject, message string) Error {
	return Error{
		Type: TypeIllegalRealization, Severity: "error", Subject: subject,
		Message:    message,
		Suggestion: "Draw realizations from a class to an interface; use generalization between interfaces",
	}
}

// UnresolvableRelation reports an aggregation or composition no property can carry.
func UnresolvableRelation(subject, message string) Error {
	return Error{
		Type: TypeUnresolvableRelation, Severity: "error", Subject: subject,
		Message:    message,
		Suggestion: "Declare a property typed with the related class (or Collection<Class>) on at least one side",
	}
}

// IgnoredConnection reports a classified connection that was dropped.
func IgnoredConnection(subject, message string) Warning {
	return Warning{
		Type: TypeIgnoredConnection, Severity: "warning", Subject: subject,
		Message: message,
	}
}
