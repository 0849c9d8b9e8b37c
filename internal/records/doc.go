// Package records implements the record mutation engine.
//
// Overview:
//   - Manager runs the validate, persist, audit, rectify, comment sync
//     chain for every create, update and delete.
//   - CommentSync keeps the comments of address records and their PTR
//     counterparts paired across forward and reverse zones.
//
// Only the persistence step decides the outcome of a mutation. Audit
// logging, DNSSEC rectification and comment synchronization run after it
// and never turn a persisted mutation into a failure.
package records
