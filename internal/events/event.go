package events

import (
	"time"

	"github.com/google/uuid"

	"addressbook/internal/domain/types"
)

// Kind names an event type.
type Kind string

const (
	KindAddressBookChanged Kind = "address_book_changed"
	KindDataReloaded       Kind = "data_reloaded"
	KindJumpToListRequest  Kind = "jump_to_list_request"
	KindPersonSelected     Kind = "person_selected"
	KindOpenProfileRequest Kind = "open_profile_request"
	KindShowHelpRequest    Kind = "show_help_request"
	KindExitAppRequest     Kind = "exit_app_request"
	KindNewResultAvailable Kind = "new_result_available"
)

// Event is implemented by every event type of this package.
type Event interface {
	Kind() Kind
	Meta() Header
	isEvent()
}

// Header identifies a single published event.
type Header struct {
	ID uuid.UUID
	At time.Time
}

func newHeader() Header { return Header{ID: uuid.New(), At: time.Now().UTC()} }

// Meta returns the header.
func (h Header) Meta() Header { return h }

func (Header) isEvent() {}

// AddressBookChanged carries the state of both containers right after a
// mutation. Storage subscribes to it to persist the data.
type AddressBookChanged struct {
	Header
	Book []types.Person
	Bin  []types.Person
}

func NewAddressBookChanged(book, bin []types.Person) AddressBookChanged {
	return AddressBookChanged{Header: newHeader(), Book: book, Bin: bin}
}

func (AddressBookChanged) Kind() Kind { return KindAddressBookChanged }

// DataReloaded reports that the data was replaced from storage after an
// external change to the data file.
type DataReloaded struct {
	Header
	Source string
}

func NewDataReloaded(source string) DataReloaded {
	return DataReloaded{Header: newHeader(), Source: source}
}

func (DataReloaded) Kind() Kind { return KindDataReloaded }

// JumpToListRequest asks the view to scroll to and highlight a list entry.
// Index is zero-based into the filtered list; InBin selects the bin list.
type JumpToListRequest struct {
	Header
	Index int
	InBin bool
}

func NewJumpToListRequest(index int, inBin bool) JumpToListRequest {
	return JumpToListRequest{Header: newHeader(), Index: index, InBin: inBin}
}

func (JumpToListRequest) Kind() Kind { return KindJumpToListRequest }

// PersonSelected reports the person now highlighted in the address book.
type PersonSelected struct {
	Header
	Person types.Person
}

func NewPersonSelected(p types.Person) PersonSelected {
	return PersonSelected{Header: newHeader(), Person: p}
}

func (PersonSelected) Kind() Kind { return KindPersonSelected }

// OpenProfileRequest asks the presentation layer to open the person's
// external profile page. Nothing in the core acts on it.
type OpenProfileRequest struct {
	Header
	Person types.Person
}

func NewOpenProfileRequest(p types.Person) OpenProfileRequest {
	return OpenProfileRequest{Header: newHeader(), Person: p}
}

func (OpenProfileRequest) Kind() Kind { return KindOpenProfileRequest }

// ShowHelpRequest asks the view to display the command reference.
type ShowHelpRequest struct {
	Header
}

func NewShowHelpRequest() ShowHelpRequest { return ShowHelpRequest{Header: newHeader()} }

func (ShowHelpRequest) Kind() Kind { return KindShowHelpRequest }

// ExitAppRequest asks the application to shut down.
type ExitAppRequest struct {
	Header
}

func NewExitAppRequest() ExitAppRequest { return ExitAppRequest{Header: newHeader()} }

func (ExitAppRequest) Kind() Kind { return KindExitAppRequest }

// NewResultAvailable carries the feedback of the last command.
type NewResultAvailable struct {
	Header
	Message string
	Failed  bool
}

func NewNewResultAvailable(message string, failed bool) NewResultAvailable {
	return NewResultAvailable{Header: newHeader(), Message: message, Failed: failed}
}

func (NewResultAvailable) Kind() Kind { return KindNewResultAvailable }
