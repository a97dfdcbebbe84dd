package cli

import (
	"encoding/json"
	"io"

	"github.com/bkraemer/tde-import/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatRaw    OutputFormat = "raw"
	FormatExport OutputFormat = "export"
)

// Document selects the serialized shape for a record: the record itself or
// the versioned export envelope.
func Document(rec *match.Record, format OutputFormat) interface{} {
	if format == FormatExport {
		return match.NewExport(rec)
	}
	return rec
}

// WriteDocument writes the record as indented JSON in the given format.
func WriteDocument(w io.Writer, rec *match.Record, format OutputFormat) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Document(rec, format))
}
