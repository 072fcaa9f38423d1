/*
 * Copyright (c) Yashwardhan-41007
 */

package main

import (
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd"
	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
)

var version = "0.1.0"

func main() {
	atlasClient.SetVersion(version)
	cmd.Execute(version)
}
