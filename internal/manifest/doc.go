// Package manifest builds and checks the machine-readable files of a
// scaffolded package: the composer.json manifest, validated against an
// embedded JSON schema, and the doctrine migrations configuration.
package manifest
