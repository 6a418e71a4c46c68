package signin

import "strings"

const MinPasswordLength = 8

// Validate reports per-field validity of sign-in input. The rules are
// deliberately permissive: an email only needs an "@" and a "." anywhere,
// and a password only needs MinPasswordLength bytes.
func Validate(email, password string) ValidationResult {
	return ValidationResult{
		EmailValid:    strings.Contains(email, "@") && strings.Contains(email, "."),
		PasswordValid: len(password) >= MinPasswordLength,
	}
}

func (f *Form) SetEmail(email string) {
	f.Email = email
}

func (f *Form) SetPassword(password string) {
	f.Password = password
}

func (f *Form) TogglePasswordVisibility() bool {
	f.PasswordVisible = !f.PasswordVisible
	return f.PasswordVisible
}

func (f Form) Credentials() Credentials {
	return Credentials{Email: f.Email, Password: f.Password}
}

func (f Form) Validate() ValidationResult {
	return Validate(f.Email, f.Password)
}
