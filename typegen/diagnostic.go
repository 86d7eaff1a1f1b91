package typegen

import (
	"fmt"

	"github.com/teranos/tsgen/descriptor"
)

// Severity of a diagnostic. Diagnostics never abort a run; fatal problems are errors.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a non-fatal finding produced while translating
type Diagnostic struct {
	Severity  Severity
	Namespace string
	Type      string
	Member    string
	Message   string
}

func (d Diagnostic) String() string {
	where := descriptor.QualifiedName(d.Namespace, d.Type)
	if d.Member != "" {
		where += "." + d.Member
	}
	if where == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, where, d.Message)
}

// Warnf builds a warning diagnostic for a type (and optionally a member)
func Warnf(t descriptor.TypeDescriptor, member, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity:  SeverityWarning,
		Namespace: t.Namespace,
		Type:      t.Name,
		Member:    member,
		Message:   fmt.Sprintf(format, args...),
	}
}
