package fieldval

import "fmt"

// Chain is an ordered sequence of checks bound to exactly one field.
// Checks run in declaration order and evaluation stops at the first
// failure. A chain seals itself at its first evaluation; adding checks
// afterwards is a configuration error surfaced by the next Evaluate call.
type Chain struct {
	field     Field
	checks    []Check
	formatter Formatter
	sealed    bool
	declErr   error

	last      *Verdict
	lastIndex int
}

// NewChain builds a standalone chain for a field. Chains are usually
// created through Validator.Field, which also wires the validator's
// formatter.
func NewChain(f Field) *Chain {
	return &Chain{field: f, lastIndex: -1}
}

// Add appends checks to the chain in order and returns the chain for
// fluent declaration. Adding to a sealed chain or adding a nil check is
// recorded and reported by the next Evaluate call.
func (c *Chain) Add(checks ...Check) *Chain {
	if c.declErr != nil {
		return c
	}
	if c.sealed {
		c.declErr = fmt.Errorf("field %q: %w", c.field.Name, ErrChainSealed)
		return c
	}
	for _, chk := range checks {
		if chk == nil {
			c.declErr = fmt.Errorf("field %q: nil check: %w", c.field.Name, ErrNilArgument)
			return c
		}
		c.checks = append(c.checks, chk)
	}
	return c
}

// Field returns the field descriptor the chain validates.
func (c *Chain) Field() Field {
	return c.field
}

// Len returns the number of declared checks.
func (c *Chain) Len() int {
	return len(c.checks)
}

// Evaluate reads the field value once and runs the checks in order,
// returning the first failing verdict, or a success verdict when every
// check passes. The error return carries configuration problems only.
func (c *Chain) Evaluate() (Verdict, error) {
	c.sealed = true
	if c.declErr != nil {
		return Verdict{}, c.declErr
	}
	if c.field.Value == nil {
		return Verdict{}, fmt.Errorf("field %q: %w", c.field.Name, ErrNilAccessor)
	}

	value := c.field.Value()
	for i, chk := range c.checks {
		v, err := chk(c.field, value)
		if err != nil {
			return Verdict{}, fmt.Errorf("field %q: %w", c.field.Name, err)
		}
		if !v.Valid {
			c.reformat(&v)
			c.record(v, i)
			return v, nil
		}
	}

	ok := pass(c.field)
	c.record(ok, -1)
	return ok, nil
}

// OverrideMessage replaces the message of the chain's most recent failure
// with a custom string and returns the updated verdict. It applies only
// when that failure was produced by the chain's first check; otherwise it
// reports false and leaves the record untouched.
func (c *Chain) OverrideMessage(message string) (Verdict, bool) {
	if c.last == nil || c.last.Valid || c.lastIndex != 0 {
		return Verdict{}, false
	}
	v := *c.last
	v.Message = message
	c.record(v, c.lastIndex)
	return v, true
}

// Last returns the verdict produced by the most recent evaluation.
func (c *Chain) Last() (Verdict, bool) {
	if c.last == nil {
		return Verdict{}, false
	}
	return *c.last, true
}

func (c *Chain) record(v Verdict, index int) {
	c.last = &v
	c.lastIndex = index
}

// reformat re-renders a failure message through the injected formatter,
// keeping the template key and arguments intact.
func (c *Chain) reformat(v *Verdict) {
	if c.formatter == nil || v.Key == "" {
		return
	}
	v.Message = c.formatter.Format(v.Key, v.Args)
}
