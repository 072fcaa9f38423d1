/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Report artifact formats
const (
	ReportFormatJSON = "json"
	ReportFormatYAML = "yaml"
)

// DefaultReportFile is the well-known report artifact path.
const DefaultReportFile = "mongodb_atlas_audit_report.json"

// WriteReport writes the vulnerable-project aggregate to path, overwriting
// any existing artifact. Written once, at the end of a completed run.
func WriteReport(path, format string, vulnerable []VulnerableProject) error {
	var contents []byte
	var err error

	switch format {
	case ReportFormatJSON, "":
		contents, err = json.MarshalIndent(vulnerable, "", "  ")
	case ReportFormatYAML:
		contents, err = marshalYAML(vulnerable)
	default:
		return fmt.Errorf(
			"invalid report format \"%s\", allowed values: json, yaml", format)
	}
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("error writing report to %s: %w", path, err)
	}
	return nil
}

// marshalYAML round-trips through JSON so the yaml encoder sees the json
// struct tags and the preserved raw entry records.
func marshalYAML(vulnerable []VulnerableProject) ([]byte, error) {
	jsonContents, err := json.Marshal(vulnerable)
	if err != nil {
		return nil, err
	}
	var generic []map[string]interface{}
	if err := json.Unmarshal(jsonContents, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}
