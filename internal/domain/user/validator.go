package user

import (
	"fmt"
	"strings"
)

const cpfLength = 11

// NormalizeCPF strips every non-digit character from a raw CPF string,
// so "123.456.789-09" and "12345678909" map to the same stored key.
func NormalizeCPF(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF checks a normalized CPF: exactly 11 digits, not a
// repeated-digit sequence, and valid check digits.
func ValidateCPF(cpf string) error {
	if len(cpf) != cpfLength {
		return fmt.Errorf("cpf must have %d digits", cpfLength)
	}

	digits := make([]int, cpfLength)
	repeated := true
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return fmt.Errorf("cpf must contain only digits")
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			repeated = false
		}
	}

	// sequences like "00000000000" satisfy the checksum arithmetic
	// but are not valid CPFs
	if repeated {
		return fmt.Errorf("cpf check digits do not match")
	}

	if checkDigit(digits, 9) != digits[9] || checkDigit(digits, 10) != digits[10] {
		return fmt.Errorf("cpf check digits do not match")
	}
	return nil
}

// checkDigit computes the CPF verification digit over the first n digits.
func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// FormatCPF renders a normalized CPF as "000.000.000-00" for display.
// Anything that is not 11 digits is returned unchanged.
func FormatCPF(cpf string) string {
	if len(cpf) != cpfLength {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[0:3], cpf[3:6], cpf[6:9], cpf[9:11])
}

// ValidateRegister validates the registration form. Every failed field is
// reported so the caller can show all of them together.
func ValidateRegister(in RegisterInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}

	cpf := NormalizeCPF(in.CPF)
	if cpf == "" {
		errs["cpf"] = "cpf is required"
	} else if err := ValidateCPF(cpf); err != nil {
		errs["cpf"] = err.Error()
	}

	switch {
	case in.Password == "":
		errs["password"] = "password is required"
	case in.PasswordConfirm == "":
		errs["password_confirm"] = "password confirmation is required"
	case in.Password != in.PasswordConfirm:
		errs["password_confirm"] = "passwords do not match"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
