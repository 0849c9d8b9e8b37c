// Package uniuri generates cryptographically secure random strings used as
// operation identifiers in audit log entries.
package uniuri
