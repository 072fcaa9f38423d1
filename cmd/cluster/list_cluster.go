/*
 * Copyright (c) Yashwardhan-41007
 */

package cluster

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/util"
	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter/cluster"
)

var listClusterCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the clusters of a project",
	Long: "List the clusters of a project, either from the clusters endpoint " +
		"or derived from database user CLUSTER scopes.",
	Example: `atlas-audit cluster list --project 5f91aaaaf7990465218101c5`,
	Run: func(cmd *cobra.Command, args []string) {
		projectID, err := cmd.Flags().GetString("project")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(projectID) == 0 {
			logrus.Fatalln(formatter.Colorize(
				"No project ID specified, use the --project flag.\n", formatter.RedColor))
		}
		fromUserScopes, err := cmd.Flags().GetBool("from-user-scopes")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		authAPI, err := atlasClient.NewAtlasAPIClient()
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		var r []atlasClient.Cluster
		if fromUserScopes {
			r = authAPI.ListClustersFromUserScopes(projectID)
		} else {
			r = authAPI.ListClusters(projectID)
		}

		clusterCtx := formatter.Context{
			Output: os.Stdout,
			Format: cluster.NewClusterFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No clusters found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		cluster.Write(clusterCtx, r)
	},
}

func init() {
	listClusterCmd.Flags().SortFlags = false

	listClusterCmd.Flags().StringP("project", "p", "",
		"[Required] ID of the project whose clusters are listed.")
	listClusterCmd.MarkFlagRequired("project")
	listClusterCmd.Flags().Bool("from-user-scopes", false,
		"[Optional] Derive clusters from database user CLUSTER scopes "+
			"instead of the clusters endpoint. (default false)")
}
