/*
 * Copyright (c) Yashwardhan-41007
 */

package project

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

const (
	defaultProjectListing = "table {{.Name}}\t{{.ID}}"
)

// Context for project outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	p client.Project
}

// NewProjectFormat for formatting output
func NewProjectFormat(source string) formatter.Format {
	return formatter.NewFormat(source, defaultProjectListing)
}

// Write renders the context for a list of projects
func Write(ctx formatter.Context, projects []client.Project) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, project := range projects {
			err := format(&Context{p: project})
			if err != nil {
				logrus.Debugf("Error rendering project: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewProjectContext(), render)
}

// NewProjectContext creates a new context for rendering a project
func NewProjectContext() *Context {
	projectCtx := Context{}
	projectCtx.Header = formatter.SubHeaderContext{
		"Name": formatter.NameHeader,
		"ID":   formatter.IDHeader,
	}
	return &projectCtx
}

// Name fetches the project name
func (c *Context) Name() string {
	return c.p.Name
}

// ID fetches the canonical project identifier
func (c *Context) ID() string {
	return c.p.Identifier()
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.p)
}
