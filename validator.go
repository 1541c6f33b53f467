package fieldval

import "fmt"

// Validator owns one chain per declared field. Declare chains with Field,
// then call Validate as often as needed: every run re-reads current field
// values and returns a fresh Result. The first Validate call seals all
// declared chains.
type Validator struct {
	chains    []*Chain
	formatter Formatter
	sealed    bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithFormatter renders failure messages through a custom formatter
// instead of the built-in English templates.
func WithFormatter(f Formatter) Option {
	return func(v *Validator) {
		v.formatter = f
	}
}

// New creates an empty Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Field declares a new chain for the named field and returns it for
// attaching checks. Declaring a field after the first Validate call is a
// configuration error reported by the next Validate.
func (v *Validator) Field(name, typeTag string, accessor func() any) *Chain {
	c := NewChain(Field{Name: name, Type: typeTag, Value: accessor})
	c.formatter = v.formatter
	if v.sealed {
		c.sealed = true
		c.declErr = fmt.Errorf("field %q: declared after validation started: %w", name, ErrChainSealed)
	}
	v.chains = append(v.chains, c)
	return c
}

// Validate runs every declared chain in declaration order and aggregates
// the verdicts. The Result always contains exactly one verdict per
// declared field; a configuration error aborts the run and is returned
// instead.
func (v *Validator) Validate() (*Result, error) {
	v.sealed = true

	verdicts := make([]Verdict, 0, len(v.chains))
	valid := true
	for _, c := range v.chains {
		verdict, err := c.Evaluate()
		if err != nil {
			return nil, err
		}
		if !verdict.Valid {
			valid = false
		}
		verdicts = append(verdicts, verdict)
	}

	return &Result{
		Valid:      valid,
		FieldCount: len(v.chains),
		Verdicts:   verdicts,
	}, nil
}

// Chains returns the declared chains in declaration order.
func (v *Validator) Chains() []*Chain {
	return v.chains
}
