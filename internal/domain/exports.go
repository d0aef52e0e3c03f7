package domain

import (
	interfaces "addressbook/internal/domain/interfaces"
	types "addressbook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Name                 = types.Name
	Phone                = types.Phone
	Email                = types.Email
	Address              = types.Address
	Tag                  = types.Tag
	Person               = types.Person
	Predicate            = types.Predicate
	IllegalValueError    = types.IllegalValueError
	NameContainsKeywords = types.NameContainsKeywords
	TagContainsKeywords  = types.TagContainsKeywords
	ShowAll              = types.ShowAll
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Model          = interfaces.Model
	ReadOnlyBook   = interfaces.ReadOnlyBook
	Storage        = interfaces.Storage
	EventPublisher = interfaces.EventPublisher
	LogicService   = interfaces.LogicService
	StorageService = interfaces.StorageService
)
