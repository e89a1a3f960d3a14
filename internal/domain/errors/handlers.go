package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Kind    Kind   `json:"kind"`              // Failure classification, e.g., "NOT_FOUND"
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Message string `json:"message"`           // Error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	OperationID string `json:"operation_id"` // Command tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorInfo builds an ErrorInfo from any error. Errors without a domain
// kind are reported as internal failures.
func NewErrorInfo(err error) *ErrorInfo {
	var appErr AppError
	if !asAppError(err, &appErr) {
		return &ErrorInfo{Code: "INTERNAL_ERROR", Message: err.Error()}
	}

	return &ErrorInfo{
		Kind:    appErr.Kind(),
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
		Details: err.Error(),
	}
}
