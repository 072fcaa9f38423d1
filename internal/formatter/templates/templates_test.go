/*
 * Copyright (c) Yashwardhan-41007
 */

package templates

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseJSONFunction(t *testing.T) {
	tm, err := Parse(`{{json .CidrBlock}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, map[string]string{"CidrBlock": "0.0.0.0/0"}))
	want := "\"0.0.0.0/0\""
	assert.Check(t, is.Equal(want, b.String()))
}

func TestParseStringFunctions(t *testing.T) {
	tm, err := Parse(`{{join "/" (splitList ":" .) }}`)
	assert.NilError(t, err)
	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "text:with:colon"))
	want := "text/with/colon"
	assert.Check(t, is.Equal(want, b.String()))
}

func TestNewParse(t *testing.T) {
	tm, err := NewParse("foo", "this is a {{ . }}")
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "string"))
	want := "this is a string"
	assert.Check(t, is.Equal(want, b.String()))
}

func TestParseTruncateFunction(t *testing.T) {
	source := "5f91aaaaf7990465218101c5"

	testCases := []struct {
		template string
		expected string
	}{
		{
			template: `{{truncate . 8}}`,
			expected: "5f91aaaa",
		},
		{
			template: `{{truncate . 24}}`,
			expected: "5f91aaaaf7990465218101c5",
		},
		{
			template: `{{truncate . 30}}`,
			expected: "5f91aaaaf7990465218101c5",
		},
		{
			template: `{{pad . 3 3}}`,
			expected: "   5f91aaaaf7990465218101c5   ",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		tm, err := Parse(testCase.template)
		assert.NilError(t, err)

		t.Run("template: "+testCase.template, func(t *testing.T) {
			var b bytes.Buffer
			assert.NilError(t, tm.Execute(&b, source))
			assert.Check(t, is.Equal(testCase.expected, b.String()))
		})
	}
}
