package testutil

import "addressbook/internal/domain/types"

// Values shared by parser and command tests.
const (
	ValidNameAmy    = "Amy Bee"
	ValidNameBob    = "Bob Choo"
	ValidPhoneAmy   = "11111111"
	ValidPhoneBob   = "22222222"
	ValidEmailAmy   = "amy@example.com"
	ValidEmailBob   = "bob@example.com"
	ValidAddressAmy = "Block 312, Amy Street 1"
	ValidAddressBob = "Block 123, Bobby Street 3"
	ValidTagHusband = "husband"
	ValidTagFriend  = "friend"
	ValidTagCollege = "college friend"
)

// Command fragments, each with a leading space as typed after a command word.
const (
	NameDescAmy    = " n/" + ValidNameAmy
	NameDescBob    = " n/" + ValidNameBob
	PhoneDescAmy   = " p/" + ValidPhoneAmy
	PhoneDescBob   = " p/" + ValidPhoneBob
	EmailDescAmy   = " e/" + ValidEmailAmy
	EmailDescBob   = " e/" + ValidEmailBob
	AddressDescAmy = " a/" + ValidAddressAmy
	AddressDescBob = " a/" + ValidAddressBob
	TagDescFriend  = " t/" + ValidTagFriend
	TagDescHusband = " t/" + ValidTagHusband
)

// Invalid fragments: '&' in a name, 'a' in a phone, no '@' in an email, a
// blank address and '*' in a tag.
const (
	InvalidNameDesc    = " n/James&"
	InvalidPhoneDesc   = " p/911a"
	InvalidEmailDesc   = " e/bob!yahoo"
	InvalidAddressDesc = " a/"
	InvalidTagDesc     = " t/hubby*"
)

func Alice() types.Person {
	return NewPersonBuilder().WithName("Alice Pauline").WithAddress("123, Jurong West Ave 6, #08-111").
		WithEmail("alice@example.com").WithPhone("85355255").WithTags("friends").Build()
}

func Benson() types.Person {
	return NewPersonBuilder().WithName("Benson Meier").WithAddress("311, Clementi Ave 2, #02-25").
		WithEmail("johnd@example.com").WithPhone("98765432").WithTags("owesMoney", "friends").Build()
}

func Carl() types.Person {
	return NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithAddress("wall street").WithTags().Build()
}

func Daniel() types.Person {
	return NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithAddress("10th street").WithTags().Build()
}

func Elle() types.Person {
	return NewPersonBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithAddress("michegan ave").WithTags().Build()
}

func Fiona() types.Person {
	return NewPersonBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithAddress("little tokyo").WithTags().Build()
}

func George() types.Person {
	return NewPersonBuilder().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithAddress("4th street").WithTags().Build()
}

// Hoon and Ida are valid persons that are not part of the typical book.
func Hoon() types.Person {
	return NewPersonBuilder().WithName("Hoon Meier").WithPhone("8482424").
		WithEmail("stefan@example.com").WithAddress("little india").WithTags().Build()
}

func Ida() types.Person {
	return NewPersonBuilder().WithName("Ida Mueller").WithPhone("8482131").
		WithEmail("hans@example.com").WithAddress("chicago ave").WithTags().Build()
}

func Amy() types.Person {
	return NewPersonBuilder().WithName(ValidNameAmy).WithPhone(ValidPhoneAmy).
		WithEmail(ValidEmailAmy).WithAddress(ValidAddressAmy).WithTags(ValidTagFriend).Build()
}

func Bob() types.Person {
	return NewPersonBuilder().WithName(ValidNameBob).WithPhone(ValidPhoneBob).
		WithEmail(ValidEmailBob).WithAddress(ValidAddressBob).WithTags(ValidTagHusband, ValidTagFriend).Build()
}

// TypicalPersons returns the seven persons of the typical address book.
func TypicalPersons() []types.Person {
	return []types.Person{Alice(), Benson(), Carl(), Daniel(), Elle(), Fiona(), George()}
}

// TypicalBinPersons returns the persons of the typical recycle bin.
func TypicalBinPersons() []types.Person {
	return []types.Person{Hoon(), Ida()}
}
