// Package tde extracts normalized team match records from the tournament
// sites of the turnier.de / tournamentsoftware.com family.
//
// The pipeline is a set of small goquery-based fragment extractors (team
// identity, competition header, division, schedule, venue, umpires, the
// per-discipline results table) orchestrated by an Importer, plus a
// secondary fetch per team for the full season roster. The pages are
// externally controlled and loosely structured, so every extractor
// tolerates the documented optional substructures; only the load-bearing
// fragments are fatal when absent.
//
// Each import is a fresh, request-scoped derivation: the Importer keeps no
// state between calls and is safe for concurrent use.
package tde
