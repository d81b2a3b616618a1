package vaccine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// FieldErrors maps a form field to its validation message. Name and date
// are validated independently so both errors can surface together.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidInput
}
