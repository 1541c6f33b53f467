package fieldval

import (
	"fmt"
	"regexp"
	"strings"
)

// Formatter renders a failure message from its template key and arguments.
// Implementations typically look the key up in a message catalog; the
// catalog subpackage provides a YAML-backed, language-aware one.
type Formatter interface {
	Format(key string, args map[string]any) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(key string, args map[string]any) string

func (fn FormatterFunc) Format(key string, args map[string]any) string {
	return fn(key, args)
}

// Built-in English templates, one per check kind. Placeholders use the
// %{name} form.
var defaultTemplates = map[string]string{
	"validation.required":          "field is required",
	"validation.min_length":        "length must be at least %{min}",
	"validation.max_length":        "length must be at most %{max}",
	"validation.exact_length":      "length must be exactly %{exact}",
	"validation.greater_than":      "must be greater than %{bound}",
	"validation.less_than":         "must be less than %{bound}",
	"validation.greater_or_equal":  "must be at least %{bound}",
	"validation.less_or_equal":     "must be at most %{bound}",
	"validation.between":           "must be between %{min} and %{max}",
	"validation.between_exclusive": "must be strictly between %{min} and %{max}",
	"validation.not_positive":      "must not be positive",
	"validation.not_negative":      "must not be negative",
	"validation.date_before":       "date must be before %{before}",
	"validation.date_after":        "date must be after %{after}",
	"validation.date_in_range":     "date must be between %{start} and %{end}",
	"validation.must_be_text":      "must be text",
	"validation.pattern":           "must match pattern: %{pattern}",
	"validation.email":             "must be a valid email address",
	"validation.starts_with":       "must start with %{prefix}",
	"validation.ends_with":         "must end with %{suffix}",
	"validation.contains":          "must contain %{substring}",
	"validation.in":                "must be one of: %{values}",
	"validation.not_in":            "must not be one of: %{values}",
	"validation.equal_to":          "must be equal to %{other}",
	"validation.not_equal_to":      "must not be equal to %{other}",
	"validation.not_collection":    "not a valid collection",
	"validation.all":               "every item must satisfy the condition",
	"validation.any":               "at least one item must satisfy the condition",
	"validation.unique":            "must not contain duplicate items",
	"validation.credit_card":       "invalid credit card number",
	"validation.url":               "must be a valid URL",
	"validation.uuid":              "must be a valid UUID",
	"validation.alphanumeric":      "must contain only letters and numbers",
	"validation.numeric_string":    "must contain only digits",
	"validation.custom":            "is not valid",
}

// Regex to find named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintfNamed substitutes %{name} placeholders from args, leaving unknown
// placeholders untouched.
func sprintfNamed(tmpl string, args map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "%{"), "}")
		if val, ok := args[name]; ok {
			return fmt.Sprintf("%v", val)
		}
		return match
	})
}

// defaultFormat renders the built-in English message for a key, falling
// back to the key itself when no template exists.
func defaultFormat(key string, args map[string]any) string {
	tmpl, ok := defaultTemplates[key]
	if !ok {
		return key
	}
	return sprintfNamed(tmpl, args)
}

// DefaultFormatter returns the built-in English formatter.
func DefaultFormatter() Formatter {
	return FormatterFunc(defaultFormat)
}
