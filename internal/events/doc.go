// Package events is the in-process event bus that decouples the model and
// command layer from whatever presents the address book.
//
// Events form a closed set: every concrete type embeds Header, which carries
// the unexported marker method, so only this package can declare new kinds.
// Publishing is synchronous; handlers run on the publisher's goroutine in
// subscription order, after the change that raised the event is complete.
package events
