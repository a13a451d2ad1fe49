package scheme

// SchemeError is the single failure kind produced throughout the
// evaluator: a human-readable message, nothing else. The top-level loop
// is the only place that catches it.
type SchemeError struct {
	Message string
}

func (e *SchemeError) Error() string {
	return e.Message
}

// NewError builds a SchemeError with the given message.
func NewError(message string) *SchemeError {
	return &SchemeError{Message: message}
}
