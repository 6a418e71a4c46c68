package signin

type Credentials struct {
	Email    string
	Password string
}

type ValidationResult struct {
	EmailValid    bool `json:"email_valid"`
	PasswordValid bool `json:"password_valid"`
}

func (r ValidationResult) Valid() bool {
	return r.EmailValid && r.PasswordValid
}

// Form is the sign-in screen's field state.
type Form struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordVisible bool   `json:"password_visible"`
}
