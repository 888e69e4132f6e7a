package response

// Body is the JSON envelope used by middleware-level responses.
type Body struct {
	Status  string      `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(code, message string, data interface{}) Body {
	return Body{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Error(code, message string, data interface{}) Body {
	return Body{
		Status:  "error",
		Code:    code,
		Message: message,
		Data:    data,
	}
}
