// Package match defines the normalized team match document produced by an
// import: participating teams, full rosters, per-discipline sub-matches
// with printed line-ups and game scores, scheduling metadata and league
// classification.
//
// All types are plain data and immutable once assembled; every import is a
// fresh derivation from the live source pages. The package also holds the
// discipline classification rules (doubles codes, eventsheet IDs) and the
// deterministic sub-match identifier scheme.
package match
