package validate

import "strings"

// Error carries the full ordered list of violated rules. It is always
// recoverable by the caller correcting input; no state was mutated.
type Error struct {
	Codes []Code
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		msgs[i] = c.Message()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether the given rule is among the violations.
func (e *Error) Has(code Code) bool {
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}
