// Package main provides the entry point for the record engine command.
// It validates DNS resource record data against per-type grammars, writes
// records into the PowerDNS database using gorm, keeps the free-text
// comments of forward records and their PTR counterparts synchronized
// across zones, and can trigger DNSSEC rectification through the PowerDNS
// HTTP API after mutations.
package main
