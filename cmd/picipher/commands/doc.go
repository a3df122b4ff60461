// Package commands defines the picipher CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt   Shift a message up by the digits of pi
//   - decrypt   Shift a message back down
//   - digits    Report where the digits came from and their fingerprint
//
// Without a subcommand, and with stdin attached to a terminal, picipher runs
// an interactive dialogue asking for mode, message and key.
//
// # Implementation
//
// The root command loads the config file, applies explicitly set flags on top,
// and builds the dependency graph (stores, fetcher, calculator, services)
// before any subcommand runs, so handlers share one app context and acquire
// the digits at most once.
package commands
