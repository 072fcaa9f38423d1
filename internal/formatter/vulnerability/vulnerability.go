/*
 * Copyright (c) Yashwardhan-41007
 */

package vulnerability

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/audit"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

const (
	defaultVulnerabilityListing = "table {{.Project}}\t{{.ID}}\t{{.Clusters}}\t{{.OpenEntries}}"

	openEntriesHeader = "Open Entries"
)

// Context for vulnerable project outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	v audit.VulnerableProject
}

// NewVulnerabilityFormat for formatting output
func NewVulnerabilityFormat(source string) formatter.Format {
	return formatter.NewFormat(source, defaultVulnerabilityListing)
}

// Write renders the context for the vulnerable-project aggregate
func Write(ctx formatter.Context, vulnerable []audit.VulnerableProject) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, vp := range vulnerable {
			err := format(&Context{v: vp})
			if err != nil {
				logrus.Debugf("Error rendering vulnerable project: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewVulnerabilityContext(), render)
}

// NewVulnerabilityContext creates a new context for rendering a vulnerable
// project
func NewVulnerabilityContext() *Context {
	vulnerabilityCtx := Context{}
	vulnerabilityCtx.Header = formatter.SubHeaderContext{
		"Project":     formatter.ProjectHeader,
		"ID":          formatter.IDHeader,
		"Clusters":    formatter.ClustersHeader,
		"OpenEntries": openEntriesHeader,
	}
	return &vulnerabilityCtx
}

// Project fetches the vulnerable project name
func (c *Context) Project() string {
	return c.v.ProjectName
}

// ID fetches the vulnerable project identifier
func (c *Context) ID() string {
	return c.v.ProjectID
}

// Clusters fetches the affected cluster names
func (c *Context) Clusters() string {
	if len(c.v.Clusters) == 0 {
		return "None"
	}
	return strings.Join(c.v.Clusters, ", ")
}

// OpenEntries fetches the number of open access entries
func (c *Context) OpenEntries() string {
	return fmt.Sprintf("%d", len(c.v.OpenEntries))
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.v)
}
