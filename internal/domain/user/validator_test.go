package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already normalized", "12345678909", "12345678909"},
		{"punctuated", "123.456.789-09", "12345678909"},
		{"spaces and letters", " 123 456 789 09 abc", "12345678909"},
		{"empty", "", ""},
		{"only punctuation", "..-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCPF(tt.raw))
		})
	}
}

func TestNormalizeCPF_PunctuatedAndPlainAreSameKey(t *testing.T) {
	assert.Equal(t, NormalizeCPF("123.456.789-09"), NormalizeCPF("12345678909"))
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name    string
		cpf     string
		wantErr bool
	}{
		{"valid", "12345678909", false},
		{"valid second", "52998224725", false},
		{"valid third", "11144477735", false},
		{"too short", "1234567890", true},
		{"too long", "123456789091", true},
		{"empty", "", true},
		{"bad check digit", "12345678900", true},
		{"repeated digits", "11111111111", true},
		{"all zeros", "00000000000", true},
		{"non digits", "1234567890a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCPF(tt.cpf)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))
	// anything that is not 11 digits passes through untouched
	assert.Equal(t, "123", FormatCPF("123"))
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterInput{
		Name:            "Maria Silva",
		CPF:             "123.456.789-09",
		Password:        "s3cret",
		PasswordConfirm: "s3cret",
	}

	t.Run("valid input", func(t *testing.T) {
		assert.Nil(t, ValidateRegister(valid))
	})

	t.Run("empty name", func(t *testing.T) {
		in := valid
		in.Name = "   "
		errs := ValidateRegister(in)
		assert.Contains(t, errs, "name")
	})

	t.Run("empty cpf", func(t *testing.T) {
		in := valid
		in.CPF = ""
		errs := ValidateRegister(in)
		assert.Contains(t, errs, "cpf")
	})

	t.Run("invalid cpf", func(t *testing.T) {
		in := valid
		in.CPF = "123"
		errs := ValidateRegister(in)
		assert.Contains(t, errs, "cpf")
	})

	t.Run("password mismatch", func(t *testing.T) {
		in := valid
		in.PasswordConfirm = "other"
		errs := ValidateRegister(in)
		assert.Contains(t, errs, "password_confirm")
	})

	t.Run("every failed field is reported", func(t *testing.T) {
		errs := ValidateRegister(RegisterInput{})
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "cpf")
		assert.Contains(t, errs, "password")
	})
}
