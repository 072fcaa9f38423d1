/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"bytes"
	"fmt"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
)

// The one known risky configuration. IPv6 "any" ranges and broad but not
// maximal CIDRs are deliberately not detected.
const (
	openAccessCidr    = "0.0.0.0/0"
	openAccessAddress = "0.0.0.0"
)

// DetectionMode selects how access list entries are classified.
type DetectionMode string

const (
	// DetectionStructured compares the parsed cidrBlock and ipAddress
	// fields against the open-access values.
	DetectionStructured DetectionMode = "structured"
	// DetectionSubstring matches the open-access literals anywhere in the
	// raw entry record. Looser: it can match inside unrelated fields.
	DetectionSubstring DetectionMode = "substring"
)

// DefaultDetectionMode is the mode used when none is selected.
const DefaultDetectionMode = string(DetectionStructured)

// Classifier decides whether a single access list entry grants unrestricted
// access.
type Classifier interface {
	Mode() DetectionMode
	IsOpenAccess(entry client.AccessListEntry) bool
}

// NewClassifier returns the classifier for the given detection mode.
func NewClassifier(mode string) (Classifier, error) {
	switch DetectionMode(mode) {
	case DetectionStructured, "":
		return structuredClassifier{}, nil
	case DetectionSubstring:
		return substringClassifier{}, nil
	default:
		return nil, fmt.Errorf(
			"invalid detection mode \"%s\", allowed values: structured, substring", mode)
	}
}

type structuredClassifier struct{}

func (structuredClassifier) Mode() DetectionMode {
	return DetectionStructured
}

func (structuredClassifier) IsOpenAccess(entry client.AccessListEntry) bool {
	return entry.CidrBlock == openAccessCidr || entry.IPAddress == openAccessAddress
}

type substringClassifier struct{}

func (substringClassifier) Mode() DetectionMode {
	return DetectionSubstring
}

func (substringClassifier) IsOpenAccess(entry client.AccessListEntry) bool {
	raw := entry.Raw()
	if len(raw) == 0 {
		return structuredClassifier{}.IsOpenAccess(entry)
	}
	return bytes.Contains(raw, []byte(openAccessCidr)) ||
		bytes.Contains(raw, []byte(openAccessAddress))
}
