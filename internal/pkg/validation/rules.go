package validation

// PasswordMinLength is the shortest password the admin command line accepts.
var PasswordMinLength = 6

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	return true
}

// IsPassword reports whether s is long enough to be set as a password.
func IsPassword(s string) bool {
	return NewStringValidation(s).WithMinLength(PasswordMinLength).Validate()
}
