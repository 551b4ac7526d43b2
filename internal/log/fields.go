package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldLoanID     = "loan_id"
	FieldBank       = "bank"
	FieldAmount     = "amount"
	FieldTerm       = "term_months"
	FieldExportPath = "export_path"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLoan   = "loan"
	ComponentWorker = "worker"
	ComponentExport = "export"
)
