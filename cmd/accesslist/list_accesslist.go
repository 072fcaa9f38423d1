/*
 * Copyright (c) Yashwardhan-41007
 */

package accesslist

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/util"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/audit"
	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter/accesslist"
)

var listAccessListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the IP access list entries of a project",
	Long: "List the IP access list entries of a project. " +
		"Entries granting unrestricted access are marked OPEN.",
	Example: `atlas-audit accesslist list --project 5f91aaaaf7990465218101c5`,
	Run: func(cmd *cobra.Command, args []string) {
		projectID, err := cmd.Flags().GetString("project")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(projectID) == 0 {
			logrus.Fatalln(formatter.Colorize(
				"No project ID specified, use the --project flag.\n", formatter.RedColor))
		}

		classifier, err := audit.NewClassifier(audit.DefaultDetectionMode)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		authAPI, err := atlasClient.NewAtlasAPIClient()
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r := authAPI.ListAccessEntries(projectID)

		accessListCtx := formatter.Context{
			Output: os.Stdout,
			Format: accesslist.NewAccessListFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No IP access list entries found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		accesslist.Write(accessListCtx, r, classifier)
	},
}

func init() {
	listAccessListCmd.Flags().SortFlags = false

	listAccessListCmd.Flags().StringP("project", "p", "",
		"[Required] ID of the project whose IP access list is listed.")
	listAccessListCmd.MarkFlagRequired("project")
}
