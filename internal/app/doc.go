// Package app wires application dependencies for the CLI.
//
// It loads Config (built-in defaults, optionally overlaid by a YAML file),
// builds the logger, and constructs the concrete stores, the HTTP fetcher,
// the Chudnovsky calculator and the high-level services, exposing them via
// the Wire struct for commands to use.
package app
