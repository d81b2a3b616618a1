package user

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyRegistered  = errors.New("cpf already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldErrors maps a form field to its validation message so the caller
// can surface every failed field at once.
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
