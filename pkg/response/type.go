package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
}

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)
