/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

// ErrNoProjects is returned when not a single project could be fetched.
// Distinct from a clean run: the audit never started.
var ErrNoProjects = errors.New(
	"failed to fetch projects, please check your authentication")

// ErrInterrupted is returned when the run is cancelled before completion.
// No report is written for an interrupted run.
var ErrInterrupted = errors.New("audit interrupted")

// Options configure one audit run.
type Options struct {
	// FromUserScopes derives affected clusters from database user CLUSTER
	// scopes instead of the clusters endpoint.
	FromUserScopes bool
	// ReportFile is where the report artifact is written when at least one
	// vulnerable project is found.
	ReportFile string
	// ReportFormat is json or yaml.
	ReportFormat string
}

// VulnerableProject aggregates one project with open access entries.
type VulnerableProject struct {
	ProjectID   string                   `json:"project_id"`
	ProjectName string                   `json:"project_name"`
	Clusters    []string                 `json:"clusters"`
	OpenEntries []client.AccessListEntry `json:"open_entries"`
}

// Result is the outcome of one audit run.
type Result struct {
	ProjectsAudited int
	Vulnerable      []VulnerableProject
}

// Auditor drives the audit pipeline: enumerate projects, fetch access list
// and clusters per project, classify entries, aggregate vulnerable projects.
type Auditor struct {
	api        *client.AtlasAPIClient
	classifier Classifier
	opts       Options
}

// NewAuditor returns an Auditor for the given client and classifier.
func NewAuditor(api *client.AtlasAPIClient, classifier Classifier, opts Options) *Auditor {
	return &Auditor{
		api:        api,
		classifier: classifier,
		opts:       opts,
	}
}

// Run executes one strictly sequential audit pass over all projects of the
// organization. Per-project failures degrade to empty results and never
// abort the run.
func (a *Auditor) Run() (*Result, error) {
	separator := strings.Repeat("=", 80)
	logrus.Infof("%s\n", separator)
	logrus.Infof("MongoDB Atlas IP Access List Security Audit\n")
	logrus.Infof("%s\n\n", separator)

	logrus.Infof("Fetching projects for organization: %s\n", a.api.OrgID)

	s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
	s.Color(formatter.GreenColor)
	s.Suffix = " Fetching projects"
	if !quietProgress() {
		s.Start()
	}
	projects := a.api.ListProjects()
	s.Stop()

	if len(projects) == 0 {
		return nil, ErrNoProjects
	}
	logrus.Infof("Found %d project(s) to audit\n\n", len(projects))

	result := &Result{ProjectsAudited: len(projects)}
	for _, project := range projects {
		select {
		case <-a.api.Context().Done():
			return nil, ErrInterrupted
		default:
		}

		projectID := project.Identifier()
		if projectID == "" {
			logrus.Warnf(formatter.Colorize(
				fmt.Sprintf("Skipping project with no ID: %s\n", project.Name),
				formatter.YellowColor))
			continue
		}

		logrus.Infof("Checking project: %s (%s)\n", project.Name, projectID)
		a.checkProject(project.Name, projectID, result)
	}

	// An interrupt during the last project's requests degrades those calls
	// to empty results instead of re-entering the loop, so check again
	// before reporting. A partial aggregate must never be persisted.
	select {
	case <-a.api.Context().Done():
		return nil, ErrInterrupted
	default:
	}

	a.printSummary(result)

	if len(result.Vulnerable) > 0 {
		if err := WriteReport(a.opts.ReportFile, a.opts.ReportFormat, result.Vulnerable); err != nil {
			return result, err
		}
		logrus.Infof(formatter.Colorize(
			fmt.Sprintf("\nDetailed report saved to: %s\n", a.opts.ReportFile),
			formatter.GreenColor))
	}

	return result, nil
}

// checkProject audits a single project and appends to the aggregate when
// open entries are found.
func (a *Auditor) checkProject(projectName, projectID string, result *Result) {
	entries := a.api.ListAccessEntries(projectID)
	if len(entries) == 0 {
		logrus.Infof("  No IP access list entries found\n\n")
		return
	}

	openEntries := make([]client.AccessListEntry, 0)
	for _, entry := range entries {
		if a.classifier.IsOpenAccess(entry) {
			openEntries = append(openEntries, entry)
		}
	}
	if len(openEntries) == 0 {
		logrus.Infof(formatter.Colorize(
			"  No open access entries found\n\n", formatter.GreenColor))
		return
	}

	clusters := a.fetchClusters(projectID)
	clusterNames := make([]string, 0, len(clusters))
	for _, cluster := range clusters {
		clusterNames = append(clusterNames, cluster.Name)
	}

	result.Vulnerable = append(result.Vulnerable, VulnerableProject{
		ProjectID:   projectID,
		ProjectName: projectName,
		Clusters:    clusterNames,
		OpenEntries: openEntries,
	})

	logrus.Infof(formatter.Colorize(
		fmt.Sprintf("  WARNING: Found %d open access entry/entries\n", len(openEntries)),
		formatter.RedColor))
	logrus.Infof("  Clusters affected: %s\n", joinOrNone(clusterNames))
	for _, entry := range openEntries {
		comment := entry.Comment
		if comment == "" {
			comment = "No comment"
		}
		logrus.Infof("    - %s (Comment: %s)\n", entry.Target(), comment)
	}
	logrus.Infof("\n")
}

func (a *Auditor) fetchClusters(projectID string) []client.Cluster {
	if a.opts.FromUserScopes {
		return a.api.ListClustersFromUserScopes(projectID)
	}
	return a.api.ListClusters(projectID)
}

func (a *Auditor) printSummary(result *Result) {
	separator := strings.Repeat("=", 80)
	logrus.Infof("%s\n", separator)
	logrus.Infof("AUDIT SUMMARY\n")
	logrus.Infof("%s\n", separator)
	logrus.Infof("Total projects audited: %d\n", result.ProjectsAudited)
	logrus.Infof("Projects with %s access: %d\n", openAccessCidr, len(result.Vulnerable))

	if len(result.Vulnerable) == 0 {
		logrus.Infof(formatter.Colorize(
			"\nNo projects with open access found!\n", formatter.GreenColor))
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// quietProgress disables the spinner in non-interactive runs.
func quietProgress() bool {
	return strings.ToLower(os.Getenv("ATLAS_AUDIT_CI")) == "true"
}
