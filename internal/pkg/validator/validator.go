package validator

// Validator checks a struct against its validation tags. A nil return
// means the value passed; failures carry per-field messages.
type Validator interface {
	Validate(data any) error
}

var _ Validator = (*V10Validator)(nil)
