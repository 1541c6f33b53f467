package fieldval

import "strings"

// CreditCard validates a card number: spaces are stripped, all remaining
// characters must be decimal digits, the length must be in [13, 19], and
// the number must pass the Luhn checksum.
func CreditCard() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}

		cleaned := strings.ReplaceAll(s, " ", "")
		if cleaned == "" {
			return fail(f, "validation.credit_card", nil), nil
		}
		for _, r := range cleaned {
			if r < '0' || r > '9' {
				return fail(f, "validation.credit_card", nil), nil
			}
		}
		if len(cleaned) < 13 || len(cleaned) > 19 {
			return fail(f, "validation.credit_card", nil), nil
		}

		// Luhn: from the rightmost digit, double every second digit and
		// subtract 9 from doubled digits above 9; the sum must be a
		// multiple of 10.
		sum := 0
		double := false
		for i := len(cleaned) - 1; i >= 0; i-- {
			digit := int(cleaned[i] - '0')
			if double {
				digit *= 2
				if digit > 9 {
					digit -= 9
				}
			}
			sum += digit
			double = !double
		}
		if sum%10 != 0 {
			return fail(f, "validation.credit_card", nil), nil
		}
		return pass(f), nil
	}
}
