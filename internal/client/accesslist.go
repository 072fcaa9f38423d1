/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ListAccessEntries retrieves the IP access list of a project. Entries
// preserve the order returned by the API. Returns an empty sequence on any
// failure, 404 included.
func (a *AtlasAPIClient) ListAccessEntries(projectID string) []AccessListEntry {
	records := a.fetchRecords(
		fmt.Sprintf("nds/%s/ipWhitelist", projectID),
		"IP Access List", "List")

	entries := make([]AccessListEntry, 0, len(records))
	for _, record := range records {
		var entry AccessListEntry
		if err := json.Unmarshal(record, &entry); err != nil {
			logrus.Debugf("Skipping malformed access list record: %s\n", err.Error())
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
