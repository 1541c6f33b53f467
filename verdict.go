package fieldval

// Verdict is the outcome of evaluating one field's chain (or one check).
// A Verdict is produced fresh by each evaluation and never mutated.
//
// Valid=false implies a non-empty Message; Valid=true implies Message,
// Key and Args are all empty. Key and Args identify the message template
// and its arguments so hosts can re-render the failure through their own
// localization layer.
type Verdict struct {
	Valid     bool
	Field     string
	FieldType string
	Message   string
	Key       string
	Args      map[string]any
}

// Result is the aggregate outcome of one validation run. It is a snapshot:
// constructed once per Validate call and never mutated afterwards.
//
// Valid is true iff every entry in Verdicts is valid. FieldCount equals the
// number of declared chains, which is always len(Verdicts).
type Result struct {
	Valid      bool
	FieldCount int
	Verdicts   []Verdict
}

// Failed returns the failing verdicts in declaration order.
func (r *Result) Failed() []Verdict {
	var failed []Verdict
	for _, v := range r.Verdicts {
		if !v.Valid {
			failed = append(failed, v)
		}
	}
	return failed
}

// Has reports whether the named field failed validation.
func (r *Result) Has(field string) bool {
	for _, v := range r.Verdicts {
		if v.Field == field && !v.Valid {
			return true
		}
	}
	return false
}

// Get returns the failure messages recorded for the named field.
func (r *Result) Get(field string) []string {
	var messages []string
	for _, v := range r.Verdicts {
		if v.Field == field && !v.Valid {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the names of all fields that failed, in declaration order.
func (r *Result) Fields() []string {
	var fields []string
	for _, v := range r.Verdicts {
		if !v.Valid {
			fields = append(fields, v.Field)
		}
	}
	return fields
}
