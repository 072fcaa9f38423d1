/*
 * Copyright (c) Yashwardhan-41007
 */

package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd set of commands are used to perform operations on Atlas
// projects
var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect MongoDB Atlas projects",
	Long:  "Inspect MongoDB Atlas projects",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	ProjectCmd.AddCommand(listProjectCmd)
}
