package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig    = "config"
	FieldJobs      = "jobs"
	FieldNormalize = "normalize"

	// Pipeline fields.
	FieldTokens     = "tokens"
	FieldStatements = "statements"
	FieldCode       = "code"
	FieldLanguage   = "language"

	// Check statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
