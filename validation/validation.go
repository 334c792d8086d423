package validation

import (
	"strings"
	"unicode"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MinLen(field, value string, n int, v Violations) {
	if len(strings.TrimSpace(value)) < n {
		v[field] = "too_short"
	}
}

func MaxLen(field, value string, n int, v Violations) {
	if len(value) > n {
		v[field] = "too_long"
	}
}

// Email checks the loose user@host.tld shape; real validation happens when
// mail is actually sent.
func Email(field, value string, v Violations) {
	at := strings.Index(value, "@")
	dot := strings.LastIndex(value, ".")
	if at < 1 || dot < at+2 || dot == len(value)-1 {
		v[field] = "invalid_email"
	}
}

// Digits requires the value to be exactly n digits (e.g. a mobile number).
func Digits(field, value string, n int, v Violations) {
	if len(value) != n {
		v[field] = "invalid_number"
		return
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			v[field] = "invalid_number"
			return
		}
	}
}
