package types

// EmailConstraint is shown when an email address fails validation.
const EmailConstraint = "Person emails should be 2 alphanumeric/period strings separated by '@'"

// Email is a person's email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email.
func NewEmail(raw string) (Email, error) {
	if err := checkField("email", tagPersonEmail, raw, EmailConstraint); err != nil {
		return Email{}, err
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether e is the absent email.
func (e Email) IsZero() bool { return e.value == "" }
