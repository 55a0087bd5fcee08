package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Boundary fields.
	FieldOp     = "op"
	FieldHandle = "handle"
	FieldTable  = "table"
	FieldIndex  = "index"
	FieldCount  = "count"
	FieldBytes  = "bytes"
	FieldPanic  = "panic"

	// Engine fields.
	FieldRule        = "rule"
	FieldKind        = "kind"
	FieldDescription = "description"
	FieldOptions     = "options"
	FieldEnabled     = "enabled"
	FieldDialect     = "dialect"
	FieldFlavor      = "flavor"
	FieldParser      = "parser"
	FieldTokens      = "tokens"
	FieldLints       = "lints"
	FieldRefs        = "refs"

	// Run fields.
	FieldFix             = "fix"
	FieldJobs            = "jobs"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithLints  = "files_with_lints"
	FieldFilesModified   = "files_modified"
	FieldLintsTotal      = "lints_total"

	// Version fields.
	FieldVersion     = "version"
	FieldCoreVersion = "core_version"
	FieldVersionCode = "version_code"
)
