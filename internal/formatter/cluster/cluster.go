/*
 * Copyright (c) Yashwardhan-41007
 */

package cluster

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

const (
	defaultClusterListing = "table {{.Name}}"
)

// Context for cluster outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	c client.Cluster
}

// NewClusterFormat for formatting output
func NewClusterFormat(source string) formatter.Format {
	return formatter.NewFormat(source, defaultClusterListing)
}

// Write renders the context for a list of clusters
func Write(ctx formatter.Context, clusters []client.Cluster) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, cluster := range clusters {
			err := format(&Context{c: cluster})
			if err != nil {
				logrus.Debugf("Error rendering cluster: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewClusterContext(), render)
}

// NewClusterContext creates a new context for rendering a cluster
func NewClusterContext() *Context {
	clusterCtx := Context{}
	clusterCtx.Header = formatter.SubHeaderContext{
		"Name": formatter.NameHeader,
	}
	return &clusterCtx
}

// Name fetches the cluster name
func (c *Context) Name() string {
	return c.c.Name
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.c)
}
