// Package logging builds the slog loggers used across the application.
// E-mail addresses in string attributes are masked before they are written.
package logging
