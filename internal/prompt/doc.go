// Package prompt provides the question-and-default capability the scaffold
// orchestrator collects its parameters through. Terminal sessions use survey
// prompts, piped input is read line by line, and non-interactive runs accept
// every default without asking.
package prompt
