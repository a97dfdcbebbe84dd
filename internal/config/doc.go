// Package config loads the import service configuration from environment
// variables, with optional .env file support for local development.
package config
