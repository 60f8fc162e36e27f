package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// EmailPattern matches the addresses the registration screens accept
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// MobilePattern allows digits with an optional leading plus, up to 15 chars
	MobilePattern = `^\+?[0-9]{7,15}$`

	// AmountPattern matches a decimal with at most two fractional digits
	AmountPattern = `^[0-9]{1,8}(\.[0-9]{1,2})?$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// DateFormat is the wire format for date-only fields
const DateFormat = "2006-01-02"

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Mobile *regexp.Regexp
	Amount *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Mobile: regexp.MustCompile(MobilePattern),
	Amount: regexp.MustCompile(AmountPattern),
}

// ValidEmail reports whether the value is an acceptable email address.
func ValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// ValidMobile reports whether the value is an acceptable mobile number.
func ValidMobile(value string) bool {
	return CompiledPatterns.Mobile.MatchString(value)
}

// ValidAmount reports whether the value is a decimal amount with at most two
// fractional digits.
func ValidAmount(value string) bool {
	return CompiledPatterns.Amount.MatchString(value)
}

// ParseDate parses a date-only wire value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

// FormatDate renders a date-only wire value.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FieldErrors collects field-level validation messages. Validation never
// partially applies: callers accumulate all failures, then either persist or
// return the whole map.
type FieldErrors map[string]string

// Add records an error message for a field, keeping the first message when a
// field fails more than one rule.
func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

// HasErrors reports whether any field failed validation.
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// StringValidation validates a string field against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation (required by default)
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

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
