/*
 * Copyright (c) Yashwardhan-41007
 */

package util

import (
	"testing"

	"github.com/spf13/viper"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestExitStatus(t *testing.T) {
	assert.Check(t, is.Equal(0, ExitStatus(0)))
	assert.Check(t, is.Equal(1, ExitStatus(1)))
	assert.Check(t, is.Equal(250, ExitStatus(250)))
	assert.Check(t, is.Equal(250, ExitStatus(4000)))
}

func TestIsOutputType(t *testing.T) {
	viper.Set("output", "json")
	defer viper.Set("output", "table")

	assert.Check(t, IsOutputType("json"))
	assert.Check(t, !IsOutputType("table"))
}
