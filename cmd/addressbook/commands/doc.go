// Package commands defines the addressbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell    Interactive terminal UI (the default)
//   - exec     Run command lines non-interactively
//   - export   Write the address book to a JSON file
//   - import   Replace the address book with a JSON file
//
// # Implementation
//
// The root command loads the configuration (defaults, config.yaml,
// ADDRESSBOOK_* environment, then flags) and builds the dependency graph
// before any subcommand runs. Subcommands share it through wire.
package commands
