/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"github.com/spf13/cobra"
)

// AuditCmd set of commands are used to run the IP access list audit
var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit MongoDB Atlas projects for open IP access lists",
	Long:  "Audit MongoDB Atlas projects for open IP access lists",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	AuditCmd.AddCommand(runAuditCmd)
}
