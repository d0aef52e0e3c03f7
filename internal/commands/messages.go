package commands

// Messages shared by the parser and several commands.
const (
	MessageUnknownCommand        = "Unknown command"
	MessageInvalidCommandFormat  = "Invalid command format! \n%s"
	MessageInvalidPersonIndex    = "The person index provided is invalid"
	MessagePersonsListedOverview = "%d persons listed!"
	MessageDuplicatePerson       = "This person already exists in the address book"
	MessageDuplicateBinPerson    = "This person already exists in the recycle bin"
	MessageMissingPerson         = "The target person cannot be missing"
)
