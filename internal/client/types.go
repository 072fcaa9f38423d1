/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import "encoding/json"

// Project is an organizational grouping of database clusters. The
// identifier appears under either "id" or "groupId" in raw responses.
type Project struct {
	ID      string `json:"id,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	Name    string `json:"name"`
}

// Identifier resolves the canonical project identifier. Empty when the
// record carried neither key.
func (p Project) Identifier() string {
	if p.ID != "" {
		return p.ID
	}
	return p.GroupID
}

// AccessListEntry is one IP allow-list rule of a project. The raw record is
// preserved as received so reports and the substring detection mode operate
// on the unparsed form.
type AccessListEntry struct {
	CidrBlock string `json:"cidrBlock,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
	Comment   string `json:"comment,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the known fields and keeps the raw record.
func (e *AccessListEntry) UnmarshalJSON(data []byte) error {
	type plain AccessListEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = AccessListEntry(p)
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the raw record back out unchanged when available.
func (e AccessListEntry) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	type plain AccessListEntry
	return json.Marshal(plain(e))
}

// Raw returns the entry as received from the API.
func (e AccessListEntry) Raw() json.RawMessage {
	return e.raw
}

// Target returns the range the entry permits, for display.
func (e AccessListEntry) Target() string {
	if e.CidrBlock != "" {
		return e.CidrBlock
	}
	if e.IPAddress != "" {
		return e.IPAddress
	}
	return "Unknown"
}

// Cluster is a managed database cluster within a project.
type Cluster struct {
	Name string `json:"name"`
}

// UserScope is a per-credential permission record naming a resource a
// database user may access.
type UserScope struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DatabaseUser is a project database user carrying scope records. Scopes of
// type CLUSTER name the clusters the user is restricted to.
type DatabaseUser struct {
	Username string      `json:"username"`
	Scopes   []UserScope `json:"scopes"`
}
