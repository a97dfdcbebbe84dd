// Package cli implements the tde-import command line interface: one-shot
// import of a team match URL with raw or export-envelope JSON output.
package cli
