// Package logic runs command lines: it parses them, executes the command
// against the model, keeps the input history and announces the outcome on
// the event bus.
package logic
