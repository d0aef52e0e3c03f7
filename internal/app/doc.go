// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, a YAML file and the environment, then builds
// the logger, event bus, storage backend, model and services, exposing them
// via the Wire struct for commands to use.
package app
