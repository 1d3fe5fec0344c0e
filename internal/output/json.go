package output

import (
	"encoding/json"

	"github.com/envdrift/envdrift/pkg/types"
)

// JSONFormatter handles JSON output formatting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatDriftReport formats a drift report as JSON
func (j *JSONFormatter) FormatDriftReport(report *types.DriftReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// FormatSnapshot formats a snapshot as JSON
func (j *JSONFormatter) FormatSnapshot(snapshot *types.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}
