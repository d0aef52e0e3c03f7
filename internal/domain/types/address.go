package types

// AddressConstraint is shown when an address fails validation.
const AddressConstraint = "Person addresses can take any values, and it should not be blank"

// Address is a person's postal address; free text that must not start blank.
type Address struct {
	value string
}

// NewAddress validates raw and returns it as an Address.
func NewAddress(raw string) (Address, error) {
	if err := checkField("address", tagPersonAddress, raw, AddressConstraint); err != nil {
		return Address{}, err
	}
	return Address{value: raw}, nil
}

func (a Address) String() string { return a.value }

// IsZero reports whether a is the absent address.
func (a Address) IsZero() bool { return a.value == "" }
