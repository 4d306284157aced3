// Package cli defines the Cobra command tree for the oxskel CLI. Each file
// registers one top-level command (module, component, templates, config,
// version) with the root command. Commands turn flags and config defaults
// into scaffold parameters and leave the work to internal/scaffold.
package cli
