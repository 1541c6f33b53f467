package fieldval

import "fmt"

// Collection checks iterate slices and arrays. A value that is not a
// collection yields a failure verdict rather than a configuration error:
// loosely-typed fields legitimately hold non-collection values at runtime.

func failNotCollection(f Field) Verdict {
	return fail(f, "validation.not_collection", nil)
}

// All requires every element to satisfy the predicate.
func All(predicate func(element any) bool) Check {
	return func(f Field, value any) (Verdict, error) {
		if predicate == nil {
			return Verdict{}, fmt.Errorf("all: %w", ErrNilArgument)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		elems, ok := elementsOf(value)
		if !ok {
			return failNotCollection(f), nil
		}
		for _, e := range elems {
			if !predicate(e) {
				return fail(f, "validation.all", nil), nil
			}
		}
		return pass(f), nil
	}
}

// Any requires at least one element to satisfy the predicate.
func Any(predicate func(element any) bool) Check {
	return func(f Field, value any) (Verdict, error) {
		if predicate == nil {
			return Verdict{}, fmt.Errorf("any: %w", ErrNilArgument)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		elems, ok := elementsOf(value)
		if !ok {
			return failNotCollection(f), nil
		}
		for _, e := range elems {
			if predicate(e) {
				return pass(f), nil
			}
		}
		return fail(f, "validation.any", nil), nil
	}
}

// Unique requires all elements to be pairwise distinct under normalized
// value-equality.
func Unique() Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		elems, ok := elementsOf(value)
		if !ok {
			return failNotCollection(f), nil
		}
		for i := range elems {
			for j := i + 1; j < len(elems); j++ {
				if equalValues(elems[i], elems[j]) {
					return fail(f, "validation.unique", nil), nil
				}
			}
		}
		return pass(f), nil
	}
}
