// Package fieldval is a rule-based field validation engine for in-memory
// records. A caller declares, per field, an ordered chain of checks
// (required, length bounds, numeric and date comparisons, pattern matching,
// membership, custom predicates); evaluating the chain against the live
// field value produces a structured pass/fail verdict with a human-readable
// message.
//
// # Architecture
//
// Core building blocks:
//   - Field     – name/type/accessor triple identifying what a chain validates
//   - Check     – a single rule, a pure function of the current field value
//   - Chain     – ordered sequence of Checks bound to one Field, fail-fast
//   - Verdict   – pass/fail outcome plus message for one field
//   - Result    – aggregate outcome across all declared chains for one run
//   - Validator – owns one Chain per declared field and runs them all
//
// Each source file groups a family of checks (length_checks.go,
// numeric_checks.go, date_checks.go, etc.). Check constructors close over
// their configuration and hold no other state.
//
// Two outcome channels are kept strictly apart. A failing Verdict is the
// everyday result of a value not passing a business rule and is always
// returned as data, never as an error. A configuration error (a check wired
// to a field whose value shape it cannot interpret, a nil argument, a
// negative length bound, mutation of a sealed chain) is returned through
// the error return so miswired rules fail loud instead of being absorbed
// into the Result.
//
// # Usage
//
//	v := fieldval.New()
//	v.Field("email", "string", func() any { return form.Email }).
//	    Add(fieldval.Required(), fieldval.EmailAddress())
//	v.Field("age", "int", func() any { return form.Age }).
//	    Add(fieldval.Between(18, 120))
//
//	res, err := v.Validate()
//	if err != nil {
//	    // a rule is miswired for its field type
//	}
//	if !res.Valid {
//	    for _, verdict := range res.Failed() {
//	        fmt.Println(verdict.Field, verdict.Message)
//	    }
//	}
//
// # Lifecycle
//
// Chains are assembled once per record type and sealed at the first
// Validate call; after that the Validator is reusable across runs. Every
// run re-reads the current field values through the accessors and returns
// a fresh Result snapshot. The package does no locking: concurrent
// Validate calls are safe once the declare phase is over, provided the
// supplied accessors are themselves safe to call concurrently.
//
// # Messages
//
// Every failure message is rendered from a template keyed by check kind
// ("validation.min_length", "validation.email", ...). The built-in
// formatter renders English messages; a custom Formatter can be injected
// with WithFormatter, and each Verdict carries its template key and
// arguments so hosts can re-render messages themselves. The catalog
// subpackage provides a YAML-backed, language-aware Formatter.
package fieldval
