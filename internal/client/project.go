/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ListProjects retrieves all projects in the organization. Returns an empty
// sequence on any failure.
func (a *AtlasAPIClient) ListProjects() []Project {
	records := a.fetchRecords(
		fmt.Sprintf("orgs/%s/groups", a.OrgID),
		"Project", "List")

	projects := make([]Project, 0, len(records))
	for _, record := range records {
		var project Project
		if err := json.Unmarshal(record, &project); err != nil {
			logrus.Debugf("Skipping malformed project record: %s\n", err.Error())
			continue
		}
		projects = append(projects, project)
	}
	return projects
}
