/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
)

func entryFromJSON(t *testing.T, raw string) client.AccessListEntry {
	t.Helper()
	var entry client.AccessListEntry
	assert.NilError(t, json.Unmarshal([]byte(raw), &entry))
	return entry
}

func TestStructuredClassifier(t *testing.T) {
	classifier, err := NewClassifier("structured")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(DetectionStructured, classifier.Mode()))

	testCases := []struct {
		name  string
		entry client.AccessListEntry
		open  bool
	}{
		{"open cidr", client.AccessListEntry{CidrBlock: "0.0.0.0/0"}, true},
		{"open address", client.AccessListEntry{IPAddress: "0.0.0.0"}, true},
		{"private range", client.AccessListEntry{CidrBlock: "10.0.0.0/8"}, false},
		{"single host", client.AccessListEntry{IPAddress: "203.0.113.7"}, false},
		{"empty entry", client.AccessListEntry{}, false},
		// narrow rule: IPv6 any and covering-but-not-equal ranges stay undetected
		{"ipv6 any", client.AccessListEntry{CidrBlock: "::/0"}, false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			assert.Check(t, is.Equal(testCase.open, classifier.IsOpenAccess(testCase.entry)))
		})
	}
}

func TestSubstringClassifier(t *testing.T) {
	classifier, err := NewClassifier("substring")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(DetectionSubstring, classifier.Mode()))

	open := entryFromJSON(t, `{"cidrBlock":"0.0.0.0/0"}`)
	assert.Check(t, classifier.IsOpenAccess(open))

	clean := entryFromJSON(t, `{"cidrBlock":"10.0.0.0/8"}`)
	assert.Check(t, !classifier.IsOpenAccess(clean))

	// the looser semantics match the literal inside unrelated fields
	commentOnly := entryFromJSON(t, `{"cidrBlock":"10.0.0.0/8","comment":"was 0.0.0.0/0 once"}`)
	assert.Check(t, classifier.IsOpenAccess(commentOnly))
}

func TestNewClassifierDefaultsToStructured(t *testing.T) {
	classifier, err := NewClassifier("")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(DetectionStructured, classifier.Mode()))
}

func TestNewClassifierRejectsUnknownMode(t *testing.T) {
	_, err := NewClassifier("fuzzy")
	assert.Check(t, err != nil)
}
