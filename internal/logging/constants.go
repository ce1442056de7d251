package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output filterable.
const (
	FieldFile     = "file"
	FieldCount    = "count"
	FieldFormat   = "format"
	FieldAccount  = "account"
	FieldContents = "contents"
	FieldKey      = "key"
	FieldCategory = "category"
	FieldDesc     = "desc"
	FieldRunID    = "run_id"
)
