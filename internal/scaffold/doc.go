// Package scaffold creates OXID eShop module and component skeletons. An
// Orchestrator collects the parameters through a prompt.Prompter, confirms
// the destination, creates the planned directories and writes the rendered
// artifacts. Nothing is written before the destination is confirmed, and an
// already populated destination needs explicit override consent.
package scaffold
