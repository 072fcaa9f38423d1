/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestDecodeRecordsBareArray(t *testing.T) {
	records, err := decodeRecords([]byte(`[{"name":"a"},{"name":"b"}]`))
	assert.NilError(t, err)
	assert.Check(t, is.Len(records, 2))
}

func TestDecodeRecordsEnvelope(t *testing.T) {
	bare, err := decodeRecords([]byte(`[{"name":"a"},{"name":"b"}]`))
	assert.NilError(t, err)
	enveloped, err := decodeRecords([]byte(`{"results":[{"name":"a"},{"name":"b"}]}`))
	assert.NilError(t, err)

	assert.Check(t, is.Len(enveloped, len(bare)))
	for i := range bare {
		assert.Check(t, is.Equal(string(bare[i]), string(enveloped[i])))
	}
}

func TestDecodeRecordsInvalid(t *testing.T) {
	_, err := decodeRecords([]byte(`"just a string"`))
	assert.Check(t, err != nil)
}

func TestDecodeRecordsEmptyEnvelope(t *testing.T) {
	records, err := decodeRecords([]byte(`{"results":[]}`))
	assert.NilError(t, err)
	assert.Check(t, is.Len(records, 0))
}
