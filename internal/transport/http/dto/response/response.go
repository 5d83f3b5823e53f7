package response

// Response is the envelope every API endpoint returns. Message is set on
// failures and on mutations that want to confirm what happened; Data carries
// the payload when there is one.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OKWithMessage(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func Fail(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
