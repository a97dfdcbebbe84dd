// Package server exposes the import pipeline over HTTP: one endpoint that
// takes a team match URL, runs a fresh extraction, and returns the
// normalized record as JSON, either bare or wrapped in the export envelope.
// Responses are never cacheable.
package server
