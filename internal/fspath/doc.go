// Package fspath canonicalizes and joins filesystem paths without touching
// the filesystem. Resolve collapses "." and ".." segments against a working
// directory; Join combines a base path with relative segments and treats an
// absolute segment list as an override of the base.
package fspath
