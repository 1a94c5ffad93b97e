package models

// Response is the envelope returned by dashboard operations (CLI and HTTP
// share it).
type Response struct {
	Op         string      `json:"op" yaml:"op"`
	Batch      string      `json:"batch,omitempty" yaml:"batch,omitempty"`
	MatchCount int         `json:"match_count" yaml:"match_count"`
	TotalCount int         `json:"total_count" yaml:"total_count"`
	Data       interface{} `json:"data" yaml:"data"`
	Error      *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewErrorResponse builds an error envelope for a failed operation.
func NewErrorResponse(op, errType, message string, actions ...string) Response {
	return Response{
		Op:   op,
		Data: nil,
		Error: &ErrorInfo{
			Type:             errType,
			Message:          message,
			SuggestedActions: actions,
		},
	}
}
