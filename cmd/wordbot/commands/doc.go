// Package commands defines the wordbot CLI and wires dependencies for subcommands.
//
// Commands
//
//   - exec     Run one command (add, remove, list, export, status, menu)
//   - chat     Line-oriented chat console over stdin/stdout
//   - serve    HTTP and websocket transport
//
// # Implementation
//
// The root command loads configuration (flags, environment, optional config
// file) and builds one app.Wire before any subcommand runs, so every
// subcommand shares the same store and router.
package commands
