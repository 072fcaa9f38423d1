/*
 * Copyright (c) Yashwardhan-41007
 */

package accesslist

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/audit"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

const (
	defaultAccessListListing = "table {{.CidrBlock}}\t{{.IPAddress}}\t{{.Comment}}\t{{.Access}}"

	cidrBlockHeader = "CIDR Block"
	ipAddressHeader = "IP Address"
	accessHeader    = "Access"

	openAccess       = "OPEN"
	restrictedAccess = "restricted"
)

// Context for access list entry outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	e          client.AccessListEntry
	classifier audit.Classifier
}

// NewAccessListFormat for formatting output
func NewAccessListFormat(source string) formatter.Format {
	return formatter.NewFormat(source, defaultAccessListListing)
}

// Write renders the context for a list of access list entries
func Write(
	ctx formatter.Context,
	entries []client.AccessListEntry,
	classifier audit.Classifier,
) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, entry := range entries {
			err := format(&Context{e: entry, classifier: classifier})
			if err != nil {
				logrus.Debugf("Error rendering access list entry: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewAccessListContext(), render)
}

// NewAccessListContext creates a new context for rendering an entry
func NewAccessListContext() *Context {
	entryCtx := Context{}
	entryCtx.Header = formatter.SubHeaderContext{
		"CidrBlock": cidrBlockHeader,
		"IPAddress": ipAddressHeader,
		"Comment":   formatter.CommentHeader,
		"Access":    accessHeader,
	}
	return &entryCtx
}

// CidrBlock fetches the entry CIDR block
func (c *Context) CidrBlock() string {
	return c.e.CidrBlock
}

// IPAddress fetches the entry IP address
func (c *Context) IPAddress() string {
	return c.e.IPAddress
}

// Comment fetches the entry comment
func (c *Context) Comment() string {
	return c.e.Comment
}

// Access renders whether the entry grants unrestricted access
func (c *Context) Access() string {
	if c.classifier != nil && c.classifier.IsOpenAccess(c.e) {
		return formatter.Colorize(openAccess, formatter.RedColor)
	}
	return restrictedAccess
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.e)
}
