package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments ErrorCode = "InvalidArguments"
	InvalidFormat    ErrorCode = "InvalidFormat"
	UnknownPrompt    ErrorCode = "UnknownPrompt"
	RenderFailed     ErrorCode = "RenderFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
