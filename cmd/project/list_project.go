/*
 * Copyright (c) Yashwardhan-41007
 */

package project

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/util"
	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter/project"
)

var listProjectCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List MongoDB Atlas projects of the organization",
	Long:    "List MongoDB Atlas projects of the organization",
	Example: `atlas-audit project list`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI, err := atlasClient.NewAtlasAPIClient()
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		r := authAPI.ListProjects()

		projectCtx := formatter.Context{
			Output: os.Stdout,
			Format: project.NewProjectFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No projects found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		project.Write(projectCtx, r)
	},
}

func init() {
	listProjectCmd.Flags().SortFlags = false
}
