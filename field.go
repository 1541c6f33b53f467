package fieldval

// Field identifies one validated field of a host record: a display name, a
// declared type tag, and an accessor returning the field's current value.
// A Field is created once at rule-declaration time and never modified.
//
// The type tag is free-form ("string", "int", "date", ...) and is carried
// through to every Verdict the field's chain produces; the engine itself
// never interprets it.
type Field struct {
	// Name is the display name used in verdicts and messages.
	Name string

	// Type is the caller-declared type tag of the field.
	Type string

	// Value returns the field's current value. It is called once per
	// chain evaluation; the same snapshot is passed to every check.
	Value func() any
}
