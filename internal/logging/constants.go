package logging

// Standardized field names for structured logging, keeping log output
// consistent and easy to filter.
const (
	FieldItem      = "item"
	FieldCategory  = "category"
	FieldPlan      = "plan"
	FieldYear      = "year"
	FieldStartYear = "start_year"
	FieldPeriod    = "period"
	FieldFile      = "file_path"
	FieldCount     = "count"
	FieldError     = "error"
	FieldOperation = "operation"
)
