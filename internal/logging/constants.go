package logging

// Standardized field names for structured logging.
const (
	FieldConversionID  = "conversion_id"
	FieldFile          = "file_path"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldInstructionID = "instruction_id"
	FieldMessageID     = "message_id"
	FieldRootPath      = "root_path"
	FieldCount         = "count"
	FieldAmount        = "amount"
	FieldErrorKind     = "error_kind"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldStatus        = "status"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldRequestID     = "request_id"
	FieldAddress       = "address"
)
