package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across tsgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldLanguage  = "language"

	// Translation
	FieldNamespace  = "namespace"
	FieldType       = "type"
	FieldMember     = "member"
	FieldModulePath = "module_path"
	FieldSeverity   = "severity"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount  = "count"
	FieldGroups = "groups"
	FieldTypes  = "types"

	// Files and paths
	FieldFile    = "file"
	FieldPath    = "path"
	FieldPackage = "package"
	FieldOp      = "op"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Engine struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewEngine() *Engine {
//	    return &Engine{
//	        logger: logger.ComponentLogger("typegen.engine"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	groupLogger := logger.ChildLogger(baseLogger, logger.FieldNamespace, group.Namespace)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
