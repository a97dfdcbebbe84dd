// Package logger provides structured JSON logging and operation counters
// for the import service.
//
// The logger supports multiple log levels (DEBUG, INFO, WARN, ERROR) and
// outputs one JSON object per line. All entries include timestamps and can
// carry arbitrary structured fields.
//
// Example usage:
//
//	logger.Info("teammatch imported", logger.Fields{
//	    "league_key": "1BL-2017",
//	    "matches":    7,
//	})
//
//	logger.IncrCounter("imports.ok")
package logger
