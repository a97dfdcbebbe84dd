// Package fetch implements the document retrieval collaborator used by the
// extraction pipeline: an HTTP client with a fixed user agent, a network
// timeout, and optional caller-configured retries with exponential backoff.
package fetch
