/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"encoding/json"
)

// resultsEnvelope is the enveloped response shape some Atlas endpoints
// return instead of a bare array.
type resultsEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

// decodeRecords normalizes the two response shapes the Atlas internal API
// uses, a bare JSON array or a {"results": [...]} envelope, into a single
// flat sequence of records.
func decodeRecords(body []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope resultsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
