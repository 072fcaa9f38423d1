/*
 * Copyright (c) Yashwardhan-41007
 */

package cluster

import (
	"github.com/spf13/cobra"
)

// ClusterCmd set of commands are used to perform operations on project
// clusters
var ClusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Inspect MongoDB Atlas clusters",
	Long:  "Inspect MongoDB Atlas clusters",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	ClusterCmd.AddCommand(listClusterCmd)
}
