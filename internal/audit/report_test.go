/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestWriteReportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	vulnerable := []VulnerableProject{
		{
			ProjectID:   "p2",
			ProjectName: "Exposed",
			Clusters:    []string{"prod-cluster"},
		},
	}

	assert.NilError(t, WriteReport(path, ReportFormatYAML, vulnerable))

	contents, err := os.ReadFile(path)
	assert.NilError(t, err)

	var report []map[string]interface{}
	assert.NilError(t, yaml.Unmarshal(contents, &report))
	assert.Check(t, is.Len(report, 1))
	assert.Check(t, is.Equal("p2", report[0]["project_id"]))
}

func TestWriteReportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	assert.NilError(t, os.WriteFile(path, []byte("stale"), 0644))

	assert.NilError(t, WriteReport(path, ReportFormatJSON, []VulnerableProject{}))

	contents, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Equal("[]", string(contents)))
}

func TestWriteReportRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	err := WriteReport(path, "xml", nil)
	assert.Check(t, err != nil)
}
