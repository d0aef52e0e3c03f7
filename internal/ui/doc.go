// Package ui is the interactive terminal shell.
//
// It is a bubbletea program: every command line and every external change of
// the data file arrives as a message in Update, so the model is only touched
// from that one loop. Events published while a message is handled are queued
// in an inbox and applied before Update returns.
package ui
