/*
 * Copyright (c) Yashwardhan-41007
 */

package accesslist

import (
	"github.com/spf13/cobra"
)

// AccessListCmd set of commands are used to perform operations on project
// IP access lists
var AccessListCmd = &cobra.Command{
	Use:   "accesslist",
	Short: "Inspect MongoDB Atlas project IP access lists",
	Long:  "Inspect MongoDB Atlas project IP access lists",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	AccessListCmd.AddCommand(listAccessListCmd)
}
