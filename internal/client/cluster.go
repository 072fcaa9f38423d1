/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

const clusterScopeType = "CLUSTER"

// ListClusters retrieves all clusters in a project. Returns an empty
// sequence on any failure.
func (a *AtlasAPIClient) ListClusters(projectID string) []Cluster {
	records := a.fetchRecords(
		fmt.Sprintf("nds/%s/clusters", projectID),
		"Cluster", "List")

	clusters := make([]Cluster, 0, len(records))
	for _, record := range records {
		var cluster Cluster
		if err := json.Unmarshal(record, &cluster); err != nil {
			logrus.Debugf("Skipping malformed cluster record: %s\n", err.Error())
			continue
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// ListClustersFromUserScopes derives a project's clusters from its database
// users' CLUSTER scope records, for deployments where the clusters endpoint
// is unavailable. Duplicates are suppressed, first-seen order is preserved.
func (a *AtlasAPIClient) ListClustersFromUserScopes(projectID string) []Cluster {
	records := a.fetchRecords(
		fmt.Sprintf("nds/%s/users", projectID),
		"Database User", "List")

	seen := map[string]bool{}
	clusters := make([]Cluster, 0)
	for _, record := range records {
		var user DatabaseUser
		if err := json.Unmarshal(record, &user); err != nil {
			logrus.Debugf("Skipping malformed database user record: %s\n", err.Error())
			continue
		}
		for _, scope := range user.Scopes {
			if scope.Type != clusterScopeType || scope.Name == "" {
				continue
			}
			if seen[scope.Name] {
				continue
			}
			seen[scope.Name] = true
			clusters = append(clusters, Cluster{Name: scope.Name})
		}
	}
	return clusters
}
