// Package platform wraps the filesystem permission calls the scaffolder
// makes. On Unix systems it uses chmod directly; on Windows permission
// changes are skipped.
package platform
