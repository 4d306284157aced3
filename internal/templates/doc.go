// Package templates is the read-only store of scaffold template files. The
// built-in set is embedded in the binary and served from an in-memory
// filesystem; a directory on disk can be layered on top to override
// individual templates.
package templates
