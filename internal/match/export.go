package match

// Export envelope constants. Version is bumped whenever the event schema
// changes incompatibly.
const (
	ExportType    = "bup-export"
	ExportVersion = 2
)

// Export wraps a Record in the versioned envelope the scoring frontend
// accepts for import.
type Export struct {
	Type    string  `json:"type"`
	Version int     `json:"version"`
	Event   *Record `json:"event"`
}

// NewExport wraps rec in the current export envelope.
func NewExport(rec *Record) *Export {
	return &Export{
		Type:    ExportType,
		Version: ExportVersion,
		Event:   rec,
	}
}
