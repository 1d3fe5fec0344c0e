package output

import (
	"gopkg.in/yaml.v3"

	"github.com/envdrift/envdrift/pkg/types"
)

// YAMLFormatter handles YAML output formatting
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// FormatDriftReport formats a drift report as YAML
func (y *YAMLFormatter) FormatDriftReport(report *types.DriftReport) ([]byte, error) {
	return yaml.Marshal(report)
}

// FormatSnapshot formats a snapshot as YAML
func (y *YAMLFormatter) FormatSnapshot(snapshot *types.Snapshot) ([]byte, error) {
	return yaml.Marshal(snapshot)
}
