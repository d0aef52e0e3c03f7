package types

// PhoneConstraint is shown when a phone number fails validation.
const PhoneConstraint = "Phone numbers can only contain numbers, and should be at least 3 digits long"

// Phone is a person's phone number, digits only.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if err := checkField("phone", tagPersonPhone, raw, PhoneConstraint); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// IsZero reports whether p is the absent phone.
func (p Phone) IsZero() bool { return p.value == "" }
