// Package dnsname implements the pure name rules shared by record
// validation and comment synchronization.
//
// Overview
//   - Reverse-zone detection for in-addr.arpa / ip6.arpa names, including
//     RFC 2317 classless delegation labels ("160/27").
//   - Registered-domain and sub-domain extraction with a small fixed table
//     of second-level country-code suffixes (deliberately not the PSL).
//   - Zone-suffix stripping and restoration between fully-qualified record
//     names and the relative form users type ("@" for the apex).
//   - Address to PTR-name conversion for forward/reverse pairing.
//
// Conventions
//   - One trailing dot is tolerated on every input; results carry no
//     trailing dot unless stated otherwise, matching how the PowerDNS
//     tables store names.
//   - All functions are pure: no I/O, no package state beyond fixed tables.
package dnsname
